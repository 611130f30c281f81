package game

// Player holds everything owned by one color. All fields mutate only
// through the rules engine so they stay consistent with the board.
type Player struct {
	Color     Color
	Resources Resources

	DevelopmentCards []DevelopmentCard

	SettlementsLeft int
	CitiesLeft      int
	RoadsLeft       int

	Harbors [NumHarborTypes]bool

	KnightsPlayed int
	LongestRoad   int
	VictoryPoints int

	// reachableEdges marks empty or own edges touching the player's
	// road network; reachableVertices marks vertices on it. Updated
	// incrementally as roads and settlements are placed.
	reachableEdges    [NumEdges]bool
	reachableVertices [NumVertices]bool
}

func newPlayer(color Color) *Player {
	return &Player{
		Color:           color,
		SettlementsLeft: StartingSettlements,
		CitiesLeft:      StartingCities,
		RoadsLeft:       StartingRoads,
	}
}

// HandSize returns the number of resource cards the player holds.
func (p *Player) HandSize() int {
	return p.Resources.Total()
}

// CanReachVertex reports whether the player's road network touches the
// vertex.
func (p *Player) CanReachVertex(vertex int) bool {
	return p.reachableVertices[vertex]
}

// CanReachEdge reports whether the edge connects to the player's road
// network or buildings.
func (p *Player) CanReachEdge(edge int) bool {
	return p.reachableEdges[edge]
}

func (p *Player) hasResources(cost Resources) bool {
	for r, amount := range cost {
		if p.Resources[r] < amount {
			return false
		}
	}
	return true
}

// findPlayableCard returns the index of a playable card of the given
// type, or -1.
func (p *Player) findPlayableCard(cardType DevelopmentCardType) int {
	for i, card := range p.DevelopmentCards {
		if card.Type == cardType && card.Playable {
			return i
		}
	}
	return -1
}

func (p *Player) copy() *Player {
	clone := *p
	clone.DevelopmentCards = append([]DevelopmentCard(nil), p.DevelopmentCards...)
	return &clone
}
