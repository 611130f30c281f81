package game

// LegalActions enumerates every action the current player may apply.
// During set-up it returns the legal settlement/road placements; after
// set-up it covers builds, the development deck, every parameter
// combination of the playable cards, ending the turn and maritime
// trades. Domestic trades need a willing partner and are validated on
// application instead.
func (g *Game) LegalActions() []Action {
	if g.IsSetUp() {
		return g.legalSetUps()
	}

	player := g.Players[0]
	var actions []Action

	var validEdges []int
	for e := range g.Board.Edges {
		if g.Board.Edges[e].Owner == NoColor && player.reachableEdges[e] {
			validEdges = append(validEdges, e)
		}
	}

	if player.CitiesLeft > 0 && player.hasResources(CityCost) {
		for v := range g.Board.Vertices {
			vertex := &g.Board.Vertices[v]
			if vertex.Owner == player.Color && !vertex.IsCity {
				actions = append(actions, Action{Type: ActionBuildCity, Vertex: v})
			}
		}
	}

	if player.SettlementsLeft > 0 && player.hasResources(SettlementCost) {
		for v := range g.Board.Vertices {
			if g.Board.Vertices[v].Owner == NoColor &&
				!g.distanceRule[v] && player.reachableVertices[v] {
				actions = append(actions, Action{Type: ActionBuildSettlement, Vertex: v})
			}
		}
	}

	if len(g.DevelopmentCards) > 0 && player.hasResources(DevelopmentCardCost) {
		actions = append(actions, Action{Type: ActionBuyDevelopmentCard})
	}

	if player.RoadsLeft > 0 && player.hasResources(RoadCost) {
		for _, e := range validEdges {
			actions = append(actions, Action{Type: ActionBuildRoad, Edge: e, Edge2: -1})
		}
	}

	actions = append(actions, g.legalCardPlays(player, validEdges)...)

	actions = append(actions, Action{Type: ActionEndTurn})

	for give := Brick; give < NumResourceTypes; give++ {
		if player.Resources[give] < g.tradeRate(player, give) {
			continue
		}
		for get := Brick; get < NumResourceTypes; get++ {
			if get == give || g.Bank[get] == 0 {
				continue
			}
			actions = append(actions, Action{Type: ActionTradeMaritime, Give: give, Get: get})
		}
	}

	return actions
}

// legalCardPlays expands each playable card type once, duplicates in
// hand included only through their single type entry.
func (g *Game) legalCardPlays(player *Player, validEdges []int) []Action {
	var actions []Action

	var seen [VictoryPoint + 1]bool
	for _, card := range player.DevelopmentCards {
		if !card.Playable || seen[card.Type] {
			continue
		}
		seen[card.Type] = true

		switch card.Type {
		case Knight:
			for _, move := range g.LegalRobberMoves() {
				actions = append(actions, Action{
					Type: ActionPlayKnight, Tile: move.Tile, Victim: move.Victim,
				})
			}
		case RoadBuilding:
			if player.RoadsLeft == 0 {
				continue
			}
			if player.RoadsLeft == 1 {
				for _, e := range validEdges {
					actions = append(actions, Action{Type: ActionPlayRoadBuilding, Edge: e, Edge2: -1})
				}
				continue
			}
			for i := 0; i < len(validEdges); i++ {
				for j := i + 1; j < len(validEdges); j++ {
					actions = append(actions, Action{
						Type: ActionPlayRoadBuilding, Edge: validEdges[i], Edge2: validEdges[j],
					})
				}
			}
		case YearOfPlenty:
			total := g.Bank.Total()
			if total == 0 {
				continue
			}
			if total == 1 {
				for r := Brick; r < NumResourceTypes; r++ {
					if g.Bank[r] > 0 {
						actions = append(actions, Action{
							Type: ActionPlayYearOfPlenty, Resource: r, Resource2: NoResource,
						})
					}
				}
				continue
			}
			for r1 := Brick; r1 < NumResourceTypes; r1++ {
				if g.Bank[r1] == 0 {
					continue
				}
				for r2 := r1; r2 < NumResourceTypes; r2++ {
					need := 1
					if r2 == r1 {
						need = 2
					}
					if g.Bank[r2] < need {
						continue
					}
					actions = append(actions, Action{
						Type: ActionPlayYearOfPlenty, Resource: r1, Resource2: r2,
					})
				}
			}
		case Monopoly:
			for r := Brick; r < NumResourceTypes; r++ {
				actions = append(actions, Action{Type: ActionPlayMonopoly, Resource: r})
			}
		}
	}

	return actions
}

func (g *Game) legalSetUps() []Action {
	var actions []Action
	for v := range g.Board.Vertices {
		if g.Board.Vertices[v].Owner != NoColor || g.distanceRule[v] {
			continue
		}
		for _, e := range g.Board.Vertices[v].AdjEdges {
			if g.Board.Edges[e].Owner != NoColor {
				continue
			}
			actions = append(actions, Action{Type: ActionBuildSetUp, Vertex: v, Edge: e, Edge2: -1})
		}
	}
	return actions
}

// LegalRobberMoves enumerates every destination tile paired with each
// opponent that can be robbed there, or NoColor where the tile hosts
// none.
func (g *Game) LegalRobberMoves() []Action {
	player := g.Players[0]
	var moves []Action

	for t := range g.Board.Tiles {
		if t == g.Board.RobberTile {
			continue
		}
		onTile := map[Color]bool{}
		for _, av := range g.Board.Tiles[t].AdjVertices {
			owner := g.Board.Vertices[av].Owner
			if owner != NoColor && owner != player.Color {
				onTile[owner] = true
			}
		}
		if len(onTile) == 0 {
			moves = append(moves, Action{Type: ActionMoveRobber, Tile: t, Victim: NoColor})
			continue
		}
		for _, color := range AllColors {
			if onTile[color] {
				moves = append(moves, Action{Type: ActionMoveRobber, Tile: t, Victim: color})
			}
		}
	}

	return moves
}

// LegalDiscards enumerates every resource combination the player could
// discard after a roll of 7.
func (g *Game) LegalDiscards(color Color) []Resources {
	player := g.byColor[color]
	if player == nil {
		return nil
	}
	target := player.HandSize() / 2

	var discards []Resources
	var walk func(cur Resources, left int, r ResourceType)
	walk = func(cur Resources, left int, r ResourceType) {
		if left == 0 {
			discards = append(discards, cur)
			return
		}
		if r == Wool {
			if player.Resources[Wool]-cur[Wool] < left {
				return
			}
			cur[Wool] += left
			discards = append(discards, cur)
			return
		}
		for amount := 0; amount <= min(player.Resources[r], left); amount++ {
			next := cur
			next[r] += amount
			walk(next, left-amount, r+1)
		}
	}
	walk(Resources{}, target, Brick)

	return discards
}
