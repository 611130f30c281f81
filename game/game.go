package game

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Rand is the randomness the game consumes: dev deck and board
// shuffles, dice rolls and robber steals. Both math/rand.Rand and
// golang.org/x/exp/rand.Rand satisfy it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type config struct {
	tileTypes      []TileType
	tokens         []int
	harborTypes    []HarborType
	rng            Rand
	weightedChoice func(Resources) ResourceType
	shuffle        bool
	history        bool
}

// Option customizes game construction.
type Option func(*config)

// WithTileTypes fixes the terrain layout instead of shuffling it.
func WithTileTypes(tileTypes []TileType) Option {
	return func(c *config) { c.tileTypes = tileTypes }
}

// WithTokens fixes the production token layout. Requires WithTileTypes
// so the empty token can be validated against the desert.
func WithTokens(tokens []int) Option {
	return func(c *config) { c.tokens = tokens }
}

// WithHarborTypes fixes the harbor layout instead of shuffling it.
func WithHarborTypes(harborTypes []HarborType) Option {
	return func(c *config) { c.harborTypes = harborTypes }
}

// WithRand injects the randomness source. Defaults to a time-seeded
// math/rand generator.
func WithRand(rng Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithWeightedChoice overrides how the robber picks a card from the
// victim's hand. Defaults to a uniform pick over the cards.
func WithWeightedChoice(choose func(Resources) ResourceType) Option {
	return func(c *config) { c.weightedChoice = choose }
}

// WithoutShuffle lays out terrain, tokens, harbors and the development
// deck in their canonical order. Useful for reproducible tests.
func WithoutShuffle() Option {
	return func(c *config) { c.shuffle = false }
}

// WithHistory enables the undo stack. Off by default so rollouts do
// not pay for records they never pop.
func WithHistory() Option {
	return func(c *config) { c.history = true }
}

// Game is the authoritative state of one match. Players[0] always has
// the turn; EndTurn rotates the list.
type Game struct {
	Board   *Board
	Players []*Player

	Bank             Resources
	DevelopmentCards []DevelopmentCard // deck, drawn from the end

	Round          int // 1 and 2 are the set-up rounds
	TurnsThisRound int

	LongestRoadHolder *Player
	LargestArmyHolder *Player

	byColor map[Color]*Player

	// distanceRule marks vertices blocked for settlements because a
	// building sits next to them. Occupied vertices are rejected by
	// the occupancy check instead.
	distanceRule [NumVertices]bool

	rng            Rand
	weightedChoice func(Resources) ResourceType

	history   []record
	recording bool
}

// NewGame creates a fresh game for 2 to 4 players. The board and the
// development deck are shuffled unless options say otherwise.
func NewGame(colors []Color, opts ...Option) (*Game, error) {
	cfg := config{shuffle: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if len(colors) < 2 || len(colors) > 4 {
		return nil, newError(ErrInput, "need 2 to 4 players, got %d", len(colors))
	}
	seen := map[Color]bool{}
	for _, color := range colors {
		if color < Blue || color > White {
			return nil, newError(ErrInput, "invalid color %d", color)
		}
		if seen[color] {
			return nil, newError(ErrInput, "duplicate color %v", color)
		}
		seen[color] = true
	}
	if cfg.tokens != nil && cfg.tileTypes == nil {
		return nil, newError(ErrInput, "tokens require explicit tile types")
	}

	tileTypes := cfg.tileTypes
	if tileTypes == nil {
		tileTypes = canonicalTileTypes()
		if cfg.shuffle {
			cfg.rng.Shuffle(len(tileTypes), func(i, j int) {
				tileTypes[i], tileTypes[j] = tileTypes[j], tileTypes[i]
			})
		}
	}
	desertIdx := 0
	for i, t := range tileTypes {
		if t == Desert {
			desertIdx = i
		}
	}

	tokens := cfg.tokens
	if tokens == nil {
		if cfg.shuffle {
			tokens = spiralTokens(desertIdx, cfg.rng)
		} else {
			tokens = append([]int(nil), baseTokens...)
			tokens[desertIdx], tokens[len(tokens)-1] = 0, tokens[desertIdx]
		}
	}

	harborTypes := cfg.harborTypes
	if harborTypes == nil {
		harborTypes = append([]HarborType(nil), baseHarborTypes...)
		if cfg.shuffle {
			cfg.rng.Shuffle(len(harborTypes), func(i, j int) {
				harborTypes[i], harborTypes[j] = harborTypes[j], harborTypes[i]
			})
		}
	}

	board, err := newBoard(tileTypes, tokens, harborTypes)
	if err != nil {
		return nil, err
	}

	deck := make([]DevelopmentCard, len(baseDevelopmentCardTypes))
	for i, t := range baseDevelopmentCardTypes {
		deck[i] = DevelopmentCard{Type: t}
	}
	if cfg.shuffle {
		cfg.rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}

	g := &Game{
		Board:            board,
		DevelopmentCards: deck,
		Round:            1,
		byColor:          make(map[Color]*Player, len(colors)),
		rng:              cfg.rng,
		weightedChoice:   cfg.weightedChoice,
		recording:        cfg.history,
	}
	for r := range g.Bank {
		g.Bank[r] = BankResourceCount
	}
	for _, color := range colors {
		p := newPlayer(color)
		g.Players = append(g.Players, p)
		g.byColor[color] = p
	}
	return g, nil
}

// canonicalTileTypes is the unshuffled terrain layout: the desert sits
// on the center tile so the base token sequence aligns with it.
func canonicalTileTypes() []TileType {
	return []TileType{
		Hills, Hills, Hills,
		Forest, Forest, Forest, Forest,
		Mountains, Mountains, Mountains,
		Fields, Fields, Fields, Fields,
		Pasture, Pasture, Pasture, Pasture,
		Desert,
	}
}

// Turn returns the color whose turn it is.
func (g *Game) Turn() Color {
	return g.Players[0].Color
}

// Player returns the player of the given color, or nil.
func (g *Game) Player(color Color) *Player {
	return g.byColor[color]
}

// IsSetUp reports whether the game is still in the two set-up rounds.
func (g *Game) IsSetUp() bool {
	return g.Round <= 2
}

// Winner returns the player who reached the winning score, if any.
func (g *Game) Winner() (Color, bool) {
	for _, p := range g.Players {
		if p.VictoryPoints >= WinningVictoryPoints {
			return p.Color, true
		}
	}
	return NoColor, false
}

// IsGameOver reports whether a player has won.
func (g *Game) IsGameOver() bool {
	_, over := g.Winner()
	return over
}

// RollDice rolls two dice and returns their sum. The caller feeds the
// result into ProduceResources, or runs the discard/robber flow on a 7.
func (g *Game) RollDice() int {
	return g.rng.Intn(6) + g.rng.Intn(6) + 2
}

// Apply dispatches an enumerated action to the matching operation.
// During the set-up rounds only set-up placements are allowed, and
// set-up placements only then.
func (g *Game) Apply(action Action) error {
	if g.IsSetUp() != (action.Type == ActionBuildSetUp) {
		return newError(ErrPhase, "action %v is not allowed in this phase", action.Type)
	}
	switch action.Type {
	case ActionEndTurn:
		return g.EndTurn()
	case ActionBuildRoad:
		return g.BuildRoad(action.Edge)
	case ActionBuildSettlement:
		return g.BuildSettlement(action.Vertex)
	case ActionBuildCity:
		return g.BuildCity(action.Vertex)
	case ActionBuildSetUp:
		return g.BuildSetUp(action.Vertex, action.Edge)
	case ActionBuyDevelopmentCard:
		return g.BuyDevelopmentCard()
	case ActionPlayKnight:
		return g.PlayKnight(action.Tile, action.Victim)
	case ActionPlayRoadBuilding:
		return g.PlayRoadBuilding(action.Edge, action.Edge2)
	case ActionPlayYearOfPlenty:
		return g.PlayYearOfPlenty(action.Resource, action.Resource2)
	case ActionPlayMonopoly:
		return g.PlayMonopoly(action.Resource)
	case ActionTradeMaritime:
		return g.MaritimeTrade(action.Give, action.Get)
	case ActionTradeDomestic:
		return g.DomesticTrade(action.Offer, action.Want, action.With)
	case ActionMoveRobber:
		return g.MoveRobber(action.Tile, action.Victim)
	case ActionDiscardHalf:
		return g.DiscardHalf(action.Victim, action.Discard)
	default:
		return newError(ErrInput, "unknown action type %d", action.Type)
	}
}

// transfer moves resources between two parties; nil means the bank.
// Callers validate balances first.
func (g *Game) transfer(from, to *Player, amounts Resources) {
	for r, amount := range amounts {
		if amount == 0 {
			continue
		}
		if from != nil {
			from.Resources[r] -= amount
		} else {
			g.Bank[r] -= amount
		}
		if to != nil {
			to.Resources[r] += amount
		} else {
			g.Bank[r] += amount
		}
	}
}

// resourceAmount returns a set holding n cards of one resource.
func resourceAmount(r ResourceType, n int) Resources {
	var amounts Resources
	amounts[r] = n
	return amounts
}

// turnDelta captures one turn rotation so it can be unwound exactly.
type turnDelta struct {
	player   *Player
	flipped  []int
	reversed bool
	round    int
	turns    int
}

// advanceTurn flips the mover's fresh development cards to playable,
// rotates the turn order and handles the snake reversals after the two
// set-up rounds.
func (g *Game) advanceTurn() turnDelta {
	delta := turnDelta{player: g.Players[0], round: g.Round, turns: g.TurnsThisRound}

	// Victory point cards score on draw and are never played.
	for i := range delta.player.DevelopmentCards {
		card := &delta.player.DevelopmentCards[i]
		if !card.Playable && card.Type != VictoryPoint {
			card.Playable = true
			delta.flipped = append(delta.flipped, i)
		}
	}

	g.Players = append(g.Players[1:], g.Players[0])
	g.TurnsThisRound++
	if g.TurnsThisRound == len(g.Players) {
		g.TurnsThisRound = 0
		g.Round++
		if g.Round == 2 || g.Round == 3 {
			reversePlayers(g.Players)
			delta.reversed = true
		}
	}
	return delta
}

func (d turnDelta) undo(g *Game) {
	if d.reversed {
		reversePlayers(g.Players)
	}
	last := g.Players[len(g.Players)-1]
	copy(g.Players[1:], g.Players[:len(g.Players)-1])
	g.Players[0] = last
	g.Round = d.round
	g.TurnsThisRound = d.turns
	for _, i := range d.flipped {
		d.player.DevelopmentCards[i].Playable = false
	}
}

func reversePlayers(players []*Player) {
	for i, j := 0, len(players)-1; i < j; i, j = i+1, j-1 {
		players[i], players[j] = players[j], players[i]
	}
}

// randomResource picks one card from the hand, each card equally
// likely, unless a weighted-choice hook was injected.
func (g *Game) randomResource(hand Resources) ResourceType {
	if g.weightedChoice != nil {
		return g.weightedChoice(hand)
	}
	n := g.rng.Intn(hand.Total())
	for r, amount := range hand {
		if n < amount {
			return ResourceType(r)
		}
		n -= amount
	}
	return NoResource // unreachable for a non-empty hand
}

// Copy returns a deep copy sharing the randomness source. The copy's
// history is empty; board topology tables are shared since they never
// mutate.
func (g *Game) Copy() *Game {
	board := *g.Board
	clone := &Game{
		Board:            &board,
		Bank:             g.Bank,
		DevelopmentCards: append([]DevelopmentCard(nil), g.DevelopmentCards...),
		Round:            g.Round,
		TurnsThisRound:   g.TurnsThisRound,
		byColor:          make(map[Color]*Player, len(g.Players)),
		distanceRule:     g.distanceRule,
		rng:              g.rng,
		weightedChoice:   g.weightedChoice,
		recording:        g.recording,
	}
	for _, p := range g.Players {
		cp := p.copy()
		clone.Players = append(clone.Players, cp)
		clone.byColor[cp.Color] = cp
	}
	if g.LongestRoadHolder != nil {
		clone.LongestRoadHolder = clone.byColor[g.LongestRoadHolder.Color]
	}
	if g.LargestArmyHolder != nil {
		clone.LargestArmyHolder = clone.byColor[g.LargestArmyHolder.Color]
	}
	return clone
}

// Hash folds the mutable state into a single value for transposition
// tables and quick equality checks.
func (g *Game) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 512)
	for i := range g.Board.Vertices {
		v := &g.Board.Vertices[i]
		buf = append(buf, byte(v.Owner+1))
		if v.IsCity {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	for i := range g.Board.Edges {
		buf = append(buf, byte(g.Board.Edges[i].Owner+1))
	}
	buf = append(buf, byte(g.Board.RobberTile), byte(g.Round), byte(g.TurnsThisRound))
	for _, amount := range g.Bank {
		buf = append(buf, byte(amount))
	}
	buf = append(buf, byte(len(g.DevelopmentCards)))
	buf = append(buf, holderByte(g.LongestRoadHolder), holderByte(g.LargestArmyHolder))
	for _, p := range g.Players {
		buf = append(buf, byte(p.Color+1))
		for _, amount := range p.Resources {
			buf = append(buf, byte(amount))
		}
		for _, card := range p.DevelopmentCards {
			flag := byte(0)
			if card.Playable {
				flag = 1
			}
			buf = append(buf, byte(card.Type), flag)
		}
		buf = append(buf, byte(p.KnightsPlayed), byte(p.VictoryPoints), byte(p.LongestRoad))
		buf = append(buf, byte(p.RoadsLeft), byte(p.SettlementsLeft), byte(p.CitiesLeft))
		for _, has := range p.Harbors {
			if has {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	h.Write(buf)
	return h.Sum64()
}

func holderByte(p *Player) byte {
	if p == nil {
		return 0
	}
	return byte(p.Color + 1)
}
