package game

// BuyDevelopmentCard draws the top card of the development deck for
// the current player. The card is not playable until the buyer's next
// turn; a victory point card scores immediately.
func (g *Game) BuyDevelopmentCard() error {
	if len(g.DevelopmentCards) == 0 {
		return newError(ErrNotEnoughGameCards, "no development cards left")
	}

	player := g.Players[0]

	if !player.hasResources(DevelopmentCardCost) {
		return newError(ErrInvalidResources, "player %v needs 1 ore, 1 grain and 1 wool to buy a development card", player.Color)
	}

	g.transfer(player, nil, DevelopmentCardCost)

	card := g.DevelopmentCards[len(g.DevelopmentCards)-1]
	g.DevelopmentCards = g.DevelopmentCards[:len(g.DevelopmentCards)-1]
	player.DevelopmentCards = append(player.DevelopmentCards, card)

	if card.Type == VictoryPoint {
		player.VictoryPoints++
	}

	g.push(buyDevelopmentCardRecord{player: player})
	return nil
}

// PlayKnight moves the robber and steals from the victim, then counts
// toward the largest army.
func (g *Game) PlayKnight(tileIdx int, victim Color) error {
	player := g.Players[0]

	cardIdx := player.findPlayableCard(Knight)
	if cardIdx == -1 {
		return newError(ErrDevelopmentCard, "player %v has no knight bought on a previous turn", player.Color)
	}

	robber, err := g.moveRobber(tileIdx, victim)
	if err != nil {
		return err
	}

	rec := knightRecord{player: player, cardIdx: cardIdx, card: player.DevelopmentCards[cardIdx], robber: robber}
	g.removeCard(player, cardIdx)

	player.KnightsPlayed++

	holder := g.LargestArmyHolder
	if player.KnightsPlayed >= 3 &&
		(holder == nil || (holder != player && player.KnightsPlayed > holder.KnightsPlayed)) {
		rec.tookAward = true
		rec.prevHolder = holder
		if holder != nil {
			holder.VictoryPoints -= 2
		}
		g.LargestArmyHolder = player
		player.VictoryPoints += 2
	}

	g.push(rec)
	return nil
}

// PlayRoadBuilding builds two free roads, or one when the player has a
// single road piece left (edgeIdx2 == -1).
func (g *Game) PlayRoadBuilding(edgeIdx1, edgeIdx2 int) error {
	if edgeIdx1 < 0 || edgeIdx1 >= NumEdges {
		return newError(ErrInput, "edge index must be in [0, %d), got %d", NumEdges, edgeIdx1)
	}
	if edgeIdx2 != -1 && (edgeIdx2 < 0 || edgeIdx2 >= NumEdges) {
		return newError(ErrInput, "edge index must be in [0, %d), got %d", NumEdges, edgeIdx2)
	}
	if edgeIdx1 == edgeIdx2 {
		return newError(ErrInput, "the two roads must be on different edges, got %d twice", edgeIdx1)
	}

	player := g.Players[0]

	cardIdx := player.findPlayableCard(RoadBuilding)
	if cardIdx == -1 {
		return newError(ErrDevelopmentCard, "player %v has no road building bought on a previous turn", player.Color)
	}

	if player.RoadsLeft == 0 {
		return newError(ErrNotEnoughPieces, "player %v has no roads left", player.Color)
	}
	if (edgeIdx2 == -1) != (player.RoadsLeft == 1) {
		return newError(ErrInput, "must use all remaining roads, player %v has %d left", player.Color, player.RoadsLeft)
	}

	edge1 := &g.Board.Edges[edgeIdx1]

	if edge1.Owner != NoColor {
		return newError(ErrBuildLocation, "edge %d already has a road on it", edgeIdx1)
	}
	if !g.edgeConnected(player, edge1) {
		return newError(ErrBuildLocation, "player %v must have a road or building adjacent to edge %d", player.Color, edgeIdx1)
	}

	if edgeIdx2 != -1 {
		edge2 := &g.Board.Edges[edgeIdx2]

		if edge2.Owner != NoColor {
			return newError(ErrBuildLocation, "edge %d already has a road on it", edgeIdx2)
		}
		adjacentToFirst := false
		for _, ae := range edge2.AdjEdges {
			if ae == edgeIdx1 {
				adjacentToFirst = true
			}
		}
		if !adjacentToFirst && !g.edgeConnected(player, edge2) {
			return newError(ErrBuildLocation, "player %v must have a road or building adjacent to edge %d", player.Color, edgeIdx2)
		}
	}

	rec := roadBuildingRecord{player: player, cardIdx: cardIdx, card: player.DevelopmentCards[cardIdx]}
	g.removeCard(player, cardIdx)

	rec.roads = append(rec.roads, g.placeRoad(player, edgeIdx1))
	if edgeIdx2 != -1 {
		rec.roads = append(rec.roads, g.placeRoad(player, edgeIdx2))
	}

	g.push(rec)
	return nil
}

// PlayYearOfPlenty takes two resources from the bank, or one when the
// bank holds a single card (resource2 == NoResource).
func (g *Game) PlayYearOfPlenty(resource1, resource2 ResourceType) error {
	if resource1 < Brick || resource1 >= NumResourceTypes {
		return newError(ErrInput, "invalid resource type %d", resource1)
	}
	if resource2 != NoResource && (resource2 < Brick || resource2 >= NumResourceTypes) {
		return newError(ErrInput, "invalid resource type %d", resource2)
	}

	player := g.Players[0]

	cardIdx := player.findPlayableCard(YearOfPlenty)
	if cardIdx == -1 {
		return newError(ErrDevelopmentCard, "player %v has no year of plenty bought on a previous turn", player.Color)
	}

	if (resource2 == NoResource) != (g.Bank.Total() == 1) {
		return newError(ErrInput, "must take exactly one card when the bank holds one card")
	}

	var gained Resources
	gained[resource1]++
	if resource2 != NoResource {
		gained[resource2]++
	}
	for r, amount := range gained {
		if g.Bank[r] < amount {
			return newError(ErrNotEnoughGameCards, "bank does not have %d %v", amount, ResourceType(r))
		}
	}

	rec := yearOfPlentyRecord{player: player, cardIdx: cardIdx, card: player.DevelopmentCards[cardIdx], gained: gained}
	g.removeCard(player, cardIdx)

	g.transfer(nil, player, gained)

	g.push(rec)
	return nil
}

// PlayMonopoly takes every card of one resource from the other
// players.
func (g *Game) PlayMonopoly(resource ResourceType) error {
	if resource < Brick || resource >= NumResourceTypes {
		return newError(ErrInput, "invalid resource type %d", resource)
	}

	player := g.Players[0]

	cardIdx := player.findPlayableCard(Monopoly)
	if cardIdx == -1 {
		return newError(ErrDevelopmentCard, "player %v has no monopoly bought on a previous turn", player.Color)
	}

	rec := monopolyRecord{player: player, cardIdx: cardIdx, card: player.DevelopmentCards[cardIdx], resource: resource}
	g.removeCard(player, cardIdx)

	for _, other := range g.Players {
		if other == player {
			continue
		}
		amount := other.Resources[resource]
		g.transfer(other, player, resourceAmount(resource, amount))
		rec.takes = append(rec.takes, monopolyTake{from: other, amount: amount})
	}

	g.push(rec)
	return nil
}

func (g *Game) removeCard(player *Player, cardIdx int) {
	player.DevelopmentCards = append(
		player.DevelopmentCards[:cardIdx], player.DevelopmentCards[cardIdx+1:]...)
}
