package game

// BuildRoad builds a road for the current player on the given edge.
// Validation runs in full before any state changes: piece supply,
// then location, then resources.
func (g *Game) BuildRoad(edgeIdx int) error {
	if edgeIdx < 0 || edgeIdx >= NumEdges {
		return newError(ErrInput, "edge index must be in [0, %d), got %d", NumEdges, edgeIdx)
	}

	player := g.Players[0]

	if player.RoadsLeft == 0 {
		return newError(ErrNotEnoughPieces, "player %v has no roads left", player.Color)
	}

	edge := &g.Board.Edges[edgeIdx]

	if edge.Owner != NoColor {
		return newError(ErrBuildLocation, "edge %d already has a road on it", edgeIdx)
	}
	if !g.edgeConnected(player, edge) {
		return newError(ErrBuildLocation, "player %v must have a road or building adjacent to edge %d", player.Color, edgeIdx)
	}

	if !player.hasResources(RoadCost) {
		return newError(ErrInvalidResources, "player %v needs 1 brick and 1 lumber to build a road, has %db and %dl",
			player.Color, player.Resources[Brick], player.Resources[Lumber])
	}

	g.transfer(player, nil, RoadCost)
	delta := g.placeRoad(player, edgeIdx)
	g.push(buildRoadRecord{road: delta})
	return nil
}

// BuildSettlement builds a settlement for the current player on the
// given vertex.
func (g *Game) BuildSettlement(vertexIdx int) error {
	if vertexIdx < 0 || vertexIdx >= NumVertices {
		return newError(ErrInput, "vertex index must be in [0, %d), got %d", NumVertices, vertexIdx)
	}

	player := g.Players[0]

	if player.SettlementsLeft == 0 {
		return newError(ErrNotEnoughPieces, "player %v has no settlements left", player.Color)
	}

	vertex := &g.Board.Vertices[vertexIdx]

	if vertex.Owner != NoColor {
		return newError(ErrBuildLocation, "vertex %d already has a building on it", vertexIdx)
	}
	if !player.reachableVertices[vertexIdx] {
		return newError(ErrBuildLocation, "player %v must have a road adjacent to vertex %d", player.Color, vertexIdx)
	}
	if g.distanceRule[vertexIdx] {
		return newError(ErrBuildLocation, "cannot build next to another building, vertex %d", vertexIdx)
	}

	if !player.hasResources(SettlementCost) {
		return newError(ErrInvalidResources, "player %v needs 1 brick, 1 lumber, 1 grain and 1 wool to build a settlement", player.Color)
	}

	g.transfer(player, nil, SettlementCost)
	delta := g.placeSettlement(player, vertexIdx)
	g.push(buildSettlementRecord{settlement: delta})
	return nil
}

// BuildCity upgrades one of the current player's settlements to a
// city.
func (g *Game) BuildCity(vertexIdx int) error {
	if vertexIdx < 0 || vertexIdx >= NumVertices {
		return newError(ErrInput, "vertex index must be in [0, %d), got %d", NumVertices, vertexIdx)
	}

	player := g.Players[0]

	if player.CitiesLeft == 0 {
		return newError(ErrNotEnoughPieces, "player %v has no cities left", player.Color)
	}

	vertex := &g.Board.Vertices[vertexIdx]

	if vertex.Owner != player.Color || vertex.IsCity {
		return newError(ErrBuildLocation, "player %v does not have a settlement on vertex %d", player.Color, vertexIdx)
	}

	if !player.hasResources(CityCost) {
		return newError(ErrInvalidResources, "player %v needs 2 grain and 3 ore to build a city, has %dg and %do",
			player.Color, player.Resources[Grain], player.Resources[Ore])
	}

	g.transfer(player, nil, CityCost)

	player.SettlementsLeft++
	player.CitiesLeft--
	vertex.IsCity = true
	player.VictoryPoints++

	g.push(buildCityRecord{player: player, vertex: vertexIdx})
	return nil
}

// BuildSetUp places a free settlement plus adjacent road during the
// set-up rounds and ends the turn. In round 2 the settlement produces
// one resource per adjacent non-desert tile.
func (g *Game) BuildSetUp(vertexIdx, edgeIdx int) error {
	if vertexIdx < 0 || vertexIdx >= NumVertices {
		return newError(ErrInput, "vertex index must be in [0, %d), got %d", NumVertices, vertexIdx)
	}
	if edgeIdx < 0 || edgeIdx >= NumEdges {
		return newError(ErrInput, "edge index must be in [0, %d), got %d", NumEdges, edgeIdx)
	}
	if !g.IsSetUp() {
		return newError(ErrPhase, "set-up phase is over")
	}

	player := g.Players[0]
	vertex := &g.Board.Vertices[vertexIdx]

	if vertex.Owner != NoColor {
		return newError(ErrBuildLocation, "vertex %d already has a building on it", vertexIdx)
	}
	for _, adj := range vertex.AdjVertices {
		if g.Board.Vertices[adj].Owner != NoColor {
			return newError(ErrBuildLocation, "cannot build next to another building, vertex %d", vertexIdx)
		}
	}

	edge := &g.Board.Edges[edgeIdx]

	if edge.Owner != NoColor {
		return newError(ErrBuildLocation, "edge %d already has a road on it", edgeIdx)
	}
	adjacent := false
	for _, ae := range vertex.AdjEdges {
		if ae == edgeIdx {
			adjacent = true
		}
	}
	if !adjacent {
		return newError(ErrBuildLocation, "edge %d is not adjacent to vertex %d", edgeIdx, vertexIdx)
	}

	rec := setUpRecord{}
	rec.settlement = g.placeSettlement(player, vertexIdx)
	rec.road = g.placeRoad(player, edgeIdx)

	if g.Round == 2 {
		for _, adjTile := range vertex.AdjTiles {
			tile := &g.Board.Tiles[adjTile]
			if tile.Terrain == Desert {
				continue
			}
			rec.granted[tile.Terrain.Resource()]++
		}
		g.transfer(nil, player, rec.granted)
	}

	rec.turn = g.advanceTurn()
	g.push(rec)
	return nil
}

// EndTurn passes the turn to the next player. Development cards the
// mover bought this turn become playable.
func (g *Game) EndTurn() error {
	if g.IsSetUp() {
		return newError(ErrPhase, "set-up placements end the turn themselves")
	}
	g.push(endTurnRecord{turn: g.advanceTurn()})
	return nil
}

// edgeConnected reports whether the edge touches one of the player's
// roads or buildings.
func (g *Game) edgeConnected(player *Player, edge *Edge) bool {
	for _, ae := range edge.AdjEdges {
		if g.Board.Edges[ae].Owner == player.Color {
			return true
		}
	}
	for _, av := range edge.AdjVertices {
		if g.Board.Vertices[av].Owner == player.Color {
			return true
		}
	}
	return false
}

// roadDelta captures one road placement, including the longest-road
// consequences, so it can be unwound exactly.
type roadDelta struct {
	player *Player
	edge   int

	addedEdges    []int
	addedVertices []int

	prevLongest int
	tookBonus   bool
	prevHolder  *Player
}

// placeRoad mutates the board, updates the player's reachable sets and
// rescans the road's component for the longest-road award. Callers
// validate first.
func (g *Game) placeRoad(player *Player, edgeIdx int) roadDelta {
	delta := roadDelta{player: player, edge: edgeIdx, prevLongest: player.LongestRoad}

	edge := &g.Board.Edges[edgeIdx]
	edge.Owner = player.Color
	player.RoadsLeft--

	for _, ae := range edge.AdjEdges {
		if !player.reachableEdges[ae] {
			player.reachableEdges[ae] = true
			delta.addedEdges = append(delta.addedEdges, ae)
		}
	}
	for _, av := range edge.AdjVertices {
		if !player.reachableVertices[av] {
			player.reachableVertices[av] = true
			delta.addedVertices = append(delta.addedVertices, av)
		}
	}

	longest := g.longestRoadThrough(player, edgeIdx)
	if longest > player.LongestRoad {
		player.LongestRoad = longest
	}

	holder := g.LongestRoadHolder
	if player.LongestRoad >= 5 &&
		(holder == nil || (holder != player && player.LongestRoad > holder.LongestRoad)) {
		delta.tookBonus = true
		delta.prevHolder = holder
		if holder != nil {
			holder.VictoryPoints -= 2
		}
		g.LongestRoadHolder = player
		player.VictoryPoints += 2
	}

	return delta
}

func (d roadDelta) undo(g *Game) {
	if d.tookBonus {
		d.player.VictoryPoints -= 2
		g.LongestRoadHolder = d.prevHolder
		if d.prevHolder != nil {
			d.prevHolder.VictoryPoints += 2
		}
	}
	d.player.LongestRoad = d.prevLongest
	for _, e := range d.addedEdges {
		d.player.reachableEdges[e] = false
	}
	for _, v := range d.addedVertices {
		d.player.reachableVertices[v] = false
	}
	g.Board.Edges[d.edge].Owner = NoColor
	d.player.RoadsLeft++
}

// settlementDelta captures one settlement placement.
type settlementDelta struct {
	player *Player
	vertex int

	addedEdges    []int
	addedDistance []int
	harborAdded   bool
}

// placeSettlement mutates the board, opens the vertex's edges to the
// player, extends the distance rule and grants any harbor. Callers
// validate first.
func (g *Game) placeSettlement(player *Player, vertexIdx int) settlementDelta {
	delta := settlementDelta{player: player, vertex: vertexIdx}

	vertex := &g.Board.Vertices[vertexIdx]
	vertex.Owner = player.Color
	player.SettlementsLeft--

	for _, ae := range vertex.AdjEdges {
		if !player.reachableEdges[ae] {
			player.reachableEdges[ae] = true
			delta.addedEdges = append(delta.addedEdges, ae)
		}
	}
	for _, av := range vertex.AdjVertices {
		if !g.distanceRule[av] {
			g.distanceRule[av] = true
			delta.addedDistance = append(delta.addedDistance, av)
		}
	}

	player.VictoryPoints++

	if vertex.Harbor != NoHarbor && !player.Harbors[vertex.Harbor] {
		player.Harbors[vertex.Harbor] = true
		delta.harborAdded = true
	}

	return delta
}

func (d settlementDelta) undo(g *Game) {
	vertex := &g.Board.Vertices[d.vertex]
	if d.harborAdded {
		d.player.Harbors[vertex.Harbor] = false
	}
	d.player.VictoryPoints--
	for _, av := range d.addedDistance {
		g.distanceRule[av] = false
	}
	for _, ae := range d.addedEdges {
		d.player.reachableEdges[ae] = false
	}
	vertex.Owner = NoColor
	d.player.SettlementsLeft++
}
