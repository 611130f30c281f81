package game

// MaritimeTrade trades with the bank at the best rate the current
// player's harbors allow: 2:1 with the matching resource harbor, 3:1
// with a generic harbor, 4:1 otherwise.
func (g *Game) MaritimeTrade(give, get ResourceType) error {
	if give < Brick || give >= NumResourceTypes {
		return newError(ErrInput, "invalid resource type %d", give)
	}
	if get < Brick || get >= NumResourceTypes {
		return newError(ErrInput, "invalid resource type %d", get)
	}
	if give == get {
		return newError(ErrInput, "cannot trade %v for itself", give)
	}

	if g.Bank[get] == 0 {
		return newError(ErrNotEnoughGameCards, "bank has no %v left", get)
	}

	player := g.Players[0]
	rate := g.tradeRate(player, give)

	if player.Resources[give] < rate {
		return newError(ErrInvalidResources, "player %v needs %d %v to trade, has %d",
			player.Color, rate, give, player.Resources[give])
	}

	g.transfer(player, nil, resourceAmount(give, rate))
	g.transfer(nil, player, resourceAmount(get, 1))

	g.push(maritimeRecord{player: player, give: give, rate: rate, get: get})
	return nil
}

// tradeRate returns how many cards of the resource one bank card
// costs the player.
func (g *Game) tradeRate(player *Player, give ResourceType) int {
	switch {
	case player.Harbors[HarborType(give)]:
		return 2
	case player.Harbors[HarborGeneric]:
		return 3
	default:
		return 4
	}
}

// DomesticTrade swaps resources between the current player and the
// named partner. Both sides must offer something, the sets must not
// overlap, and both hands must cover their side.
func (g *Game) DomesticTrade(offer, want Resources, with Color) error {
	partner := g.byColor[with]
	if partner == nil {
		return newError(ErrInput, "no player of color %v", with)
	}

	player := g.Players[0]

	if partner == player {
		return newError(ErrInput, "player %v cannot trade with themselves", player.Color)
	}
	for r := range offer {
		if offer[r] < 0 || want[r] < 0 {
			return newError(ErrInput, "trade amounts must not be negative")
		}
		if offer[r] > 0 && want[r] > 0 {
			return newError(ErrInput, "cannot trade %v for itself", ResourceType(r))
		}
	}
	if offer.Total() == 0 {
		return newError(ErrInput, "player %v must offer at least 1 resource", player.Color)
	}
	if want.Total() == 0 {
		return newError(ErrInput, "player %v must receive at least 1 resource", player.Color)
	}

	if !player.hasResources(offer) {
		return newError(ErrInvalidResources, "player %v cannot cover the offered %v", player.Color, offer)
	}
	if !partner.hasResources(want) {
		return newError(ErrInvalidResources, "player %v cannot cover the requested %v", partner.Color, want)
	}

	g.transfer(partner, player, want)
	g.transfer(player, partner, offer)

	g.push(domesticRecord{player: player, partner: partner, offer: offer, want: want})
	return nil
}

// DiscardHalf discards half (rounded down) of the named player's hand
// after a roll of 7.
func (g *Game) DiscardHalf(color Color, discard Resources) error {
	player := g.byColor[color]
	if player == nil {
		return newError(ErrInput, "no player of color %v", color)
	}
	for _, amount := range discard {
		if amount < 0 {
			return newError(ErrInput, "discard amounts must not be negative")
		}
	}
	if discard.Total() != player.HandSize()/2 {
		return newError(ErrInput, "player %v must discard %d of %d cards, got %d",
			color, player.HandSize()/2, player.HandSize(), discard.Total())
	}
	if !player.hasResources(discard) {
		return newError(ErrInvalidResources, "player %v cannot cover the discard %v", color, discard)
	}

	g.transfer(player, nil, discard)

	g.push(discardRecord{player: player, discarded: discard})
	return nil
}
