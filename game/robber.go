package game

// robberDelta captures one robber move and the steal it caused.
type robberDelta struct {
	mover    *Player
	prevTile int
	victim   *Player // nil when nothing was stolen
	stolen   ResourceType
}

func (d robberDelta) undo(g *Game) {
	g.Board.Tiles[g.Board.RobberTile].HasRobber = false
	g.Board.Tiles[d.prevTile].HasRobber = true
	g.Board.RobberTile = d.prevTile
	if d.victim != nil {
		g.transfer(d.mover, d.victim, resourceAmount(d.stolen, 1))
	}
}

// MoveRobber moves the robber after a roll of 7 and steals one random
// card from the named victim. Pass NoColor only when no opponent on
// the destination tile holds a card.
func (g *Game) MoveRobber(tileIdx int, victim Color) error {
	if g.IsSetUp() {
		return newError(ErrPhase, "the robber does not move during set-up")
	}
	delta, err := g.moveRobber(tileIdx, victim)
	if err != nil {
		return err
	}
	g.push(moveRobberRecord{robber: delta})
	return nil
}

func (g *Game) moveRobber(tileIdx int, victim Color) (robberDelta, error) {
	if tileIdx < 0 || tileIdx >= NumTiles {
		return robberDelta{}, newError(ErrInput, "tile index must be in [0, %d), got %d", NumTiles, tileIdx)
	}
	if victim != NoColor && g.byColor[victim] == nil {
		return robberDelta{}, newError(ErrInput, "no player of color %v", victim)
	}

	player := g.Players[0]

	if victim == player.Color {
		return robberDelta{}, newError(ErrInput, "player %v cannot steal from themselves", player.Color)
	}
	if tileIdx == g.Board.RobberTile {
		return robberDelta{}, newError(ErrRobber, "robber is already on tile %d", tileIdx)
	}

	tile := &g.Board.Tiles[tileIdx]

	onTile := map[Color]bool{}
	for _, av := range tile.AdjVertices {
		owner := g.Board.Vertices[av].Owner
		if owner != NoColor && owner != player.Color {
			onTile[owner] = true
		}
	}

	delta := robberDelta{mover: player, prevTile: g.Board.RobberTile, stolen: NoResource}
	if victim != NoColor {
		if !onTile[victim] {
			return robberDelta{}, newError(ErrRobber, "player %v has no building on tile %d", victim, tileIdx)
		}
		victimPlayer := g.byColor[victim]
		if victimPlayer.HandSize() > 0 {
			delta.victim = victimPlayer
			delta.stolen = g.randomResource(victimPlayer.Resources)
			g.transfer(victimPlayer, player, resourceAmount(delta.stolen, 1))
		}
	} else {
		for color := range onTile {
			if g.byColor[color].HandSize() > 0 {
				return robberDelta{}, newError(ErrRobber, "must steal from a player on tile %d", tileIdx)
			}
		}
	}

	g.Board.Tiles[g.Board.RobberTile].HasRobber = false
	tile.HasRobber = true
	g.Board.RobberTile = tileIdx

	return delta, nil
}

// ProduceResources pays out the tiles bearing the rolled token. A tile
// under the robber produces nothing. When the bank cannot cover a
// resource and more than one player claims it, nobody receives any; a
// single claimant receives what is left.
func (g *Game) ProduceResources(token int) error {
	if g.IsSetUp() {
		return newError(ErrPhase, "production starts after set-up")
	}
	if token < 2 || token > 12 || token == 7 {
		return newError(ErrInput, "token must be a dice sum other than 7, got %d", token)
	}

	rec := produceRecord{}
	for _, tileIdx := range g.Board.TilesWithToken(token) {
		tile := &g.Board.Tiles[tileIdx]
		if tile.HasRobber {
			continue
		}

		resource := tile.Terrain.Resource()

		colorAmounts := map[Color]int{}
		for _, av := range tile.AdjVertices {
			vertex := &g.Board.Vertices[av]
			if vertex.Owner == NoColor {
				continue
			}
			amount := 1
			if vertex.IsCity {
				amount = 2
			}
			colorAmounts[vertex.Owner] += amount
		}

		total := 0
		for _, amount := range colorAmounts {
			total += amount
		}
		remaining := g.Bank[resource]
		if remaining < total && len(colorAmounts) > 1 {
			continue
		}

		for _, p := range g.Players {
			amount, ok := colorAmounts[p.Color]
			if !ok {
				continue
			}
			paid := min(amount, remaining)
			g.transfer(nil, p, resourceAmount(resource, paid))
			rec.payouts = append(rec.payouts, payout{player: p, resource: resource, amount: paid})
		}
	}

	g.push(rec)
	return nil
}
