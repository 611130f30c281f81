package game

// record is the inverse of one mutating operation. Every successful
// operation pushes exactly one record while history is enabled;
// composite operations bundle their sub-deltas and unwind them in
// reverse.
type record interface {
	undo(g *Game)
}

func (g *Game) push(r record) {
	if g.recording {
		g.history = append(g.history, r)
	}
}

// HistoryLen returns the number of undoable operations.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// Undo reverts the most recent mutating operation. Calling it with
// history disabled or empty is a programming error and panics.
func (g *Game) Undo() {
	if !g.recording {
		panic("undo requires a game constructed with history enabled")
	}
	if len(g.history) == 0 {
		panic("no operations to undo")
	}
	r := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	r.undo(g)
}

type buildRoadRecord struct {
	road roadDelta
}

func (r buildRoadRecord) undo(g *Game) {
	r.road.undo(g)
	g.transfer(nil, r.road.player, RoadCost)
}

type buildSettlementRecord struct {
	settlement settlementDelta
}

func (r buildSettlementRecord) undo(g *Game) {
	r.settlement.undo(g)
	g.transfer(nil, r.settlement.player, SettlementCost)
}

type buildCityRecord struct {
	player *Player
	vertex int
}

func (r buildCityRecord) undo(g *Game) {
	r.player.VictoryPoints--
	g.Board.Vertices[r.vertex].IsCity = false
	r.player.CitiesLeft++
	r.player.SettlementsLeft--
	g.transfer(nil, r.player, CityCost)
}

type setUpRecord struct {
	settlement settlementDelta
	road       roadDelta
	granted    Resources
	turn       turnDelta
}

func (r setUpRecord) undo(g *Game) {
	r.turn.undo(g)
	if r.granted.Total() > 0 {
		g.transfer(r.settlement.player, nil, r.granted)
	}
	r.road.undo(g)
	r.settlement.undo(g)
}

type endTurnRecord struct {
	turn turnDelta
}

func (r endTurnRecord) undo(g *Game) {
	r.turn.undo(g)
}

type buyDevelopmentCardRecord struct {
	player *Player
}

func (r buyDevelopmentCardRecord) undo(g *Game) {
	card := r.player.DevelopmentCards[len(r.player.DevelopmentCards)-1]
	r.player.DevelopmentCards = r.player.DevelopmentCards[:len(r.player.DevelopmentCards)-1]
	g.DevelopmentCards = append(g.DevelopmentCards, card)
	if card.Type == VictoryPoint {
		r.player.VictoryPoints--
	}
	g.transfer(nil, r.player, DevelopmentCardCost)
}

type knightRecord struct {
	player     *Player
	cardIdx    int
	card       DevelopmentCard
	robber     robberDelta
	tookAward  bool
	prevHolder *Player
}

func (r knightRecord) undo(g *Game) {
	if r.tookAward {
		r.player.VictoryPoints -= 2
		g.LargestArmyHolder = r.prevHolder
		if r.prevHolder != nil {
			r.prevHolder.VictoryPoints += 2
		}
	}
	r.player.KnightsPlayed--
	r.player.DevelopmentCards = insertCard(r.player.DevelopmentCards, r.cardIdx, r.card)
	r.robber.undo(g)
}

type roadBuildingRecord struct {
	player  *Player
	cardIdx int
	card    DevelopmentCard
	roads   []roadDelta
}

func (r roadBuildingRecord) undo(g *Game) {
	for i := len(r.roads) - 1; i >= 0; i-- {
		r.roads[i].undo(g)
	}
	r.player.DevelopmentCards = insertCard(r.player.DevelopmentCards, r.cardIdx, r.card)
}

type yearOfPlentyRecord struct {
	player  *Player
	cardIdx int
	card    DevelopmentCard
	gained  Resources
}

func (r yearOfPlentyRecord) undo(g *Game) {
	g.transfer(r.player, nil, r.gained)
	r.player.DevelopmentCards = insertCard(r.player.DevelopmentCards, r.cardIdx, r.card)
}

type monopolyTake struct {
	from   *Player
	amount int
}

type monopolyRecord struct {
	player   *Player
	cardIdx  int
	card     DevelopmentCard
	resource ResourceType
	takes    []monopolyTake
}

func (r monopolyRecord) undo(g *Game) {
	for _, take := range r.takes {
		g.transfer(r.player, take.from, resourceAmount(r.resource, take.amount))
	}
	r.player.DevelopmentCards = insertCard(r.player.DevelopmentCards, r.cardIdx, r.card)
}

type maritimeRecord struct {
	player *Player
	give   ResourceType
	rate   int
	get    ResourceType
}

func (r maritimeRecord) undo(g *Game) {
	g.transfer(r.player, nil, resourceAmount(r.get, 1))
	g.transfer(nil, r.player, resourceAmount(r.give, r.rate))
}

type domesticRecord struct {
	player  *Player
	partner *Player
	offer   Resources
	want    Resources
}

func (r domesticRecord) undo(g *Game) {
	g.transfer(r.partner, r.player, r.offer)
	g.transfer(r.player, r.partner, r.want)
}

type discardRecord struct {
	player    *Player
	discarded Resources
}

func (r discardRecord) undo(g *Game) {
	g.transfer(nil, r.player, r.discarded)
}

type moveRobberRecord struct {
	robber robberDelta
}

func (r moveRobberRecord) undo(g *Game) {
	r.robber.undo(g)
}

type payout struct {
	player   *Player
	resource ResourceType
	amount   int
}

type produceRecord struct {
	payouts []payout
}

func (r produceRecord) undo(g *Game) {
	for i := len(r.payouts) - 1; i >= 0; i-- {
		p := r.payouts[i]
		g.transfer(p.player, nil, resourceAmount(p.resource, p.amount))
	}
}

func insertCard(cards []DevelopmentCard, i int, card DevelopmentCard) []DevelopmentCard {
	cards = append(cards, DevelopmentCard{})
	copy(cards[i+1:], cards[i:])
	cards[i] = card
	return cards
}
