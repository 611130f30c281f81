package game

// longestRoadThrough rescans the same-color road component containing
// the given edge and returns the longest simple path found. Every edge
// of the component is tried as a start; branch traversals share one
// visited set per start so forks are not double counted.
func (g *Game) longestRoadThrough(player *Player, edgeIdx int) int {
	longest := 0

	stack := []int{edgeIdx}
	var scanned [NumEdges]bool
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if scanned[cur] {
			continue
		}
		scanned[cur] = true

		var visited [NumEdges]bool
		if length := g.longestRoadFrom(player, cur, -1, &visited); length > longest {
			longest = length
		}

		for _, ae := range g.Board.Edges[cur].AdjEdges {
			if g.Board.Edges[ae].Owner == player.Color && !scanned[ae] {
				stack = append(stack, ae)
			}
		}
	}

	return longest
}

// longestRoadFrom walks the player's roads outward from edge. A road
// may not continue through an opponent's building, and never turns
// back through the vertex it shares with prevEdge.
func (g *Game) longestRoadFrom(player *Player, edgeIdx, prevEdgeIdx int, visited *[NumEdges]bool) int {
	visited[edgeIdx] = true

	best := 0
	for _, v := range g.Board.Edges[edgeIdx].AdjVertices {
		if prevEdgeIdx != -1 && sharesVertex(&g.Board.Edges[prevEdgeIdx], v) {
			continue
		}
		vertex := &g.Board.Vertices[v]
		if vertex.Owner != NoColor && vertex.Owner != player.Color {
			continue
		}
		for _, ae := range vertex.AdjEdges {
			if g.Board.Edges[ae].Owner == player.Color && !visited[ae] {
				if length := g.longestRoadFrom(player, ae, edgeIdx, visited); length > best {
					best = length
				}
			}
		}
	}

	return 1 + best
}

func sharesVertex(edge *Edge, vertexIdx int) bool {
	return edge.AdjVertices[0] == vertexIdx || edge.AdjVertices[1] == vertexIdx
}
