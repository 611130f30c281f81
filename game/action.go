package game

// ActionType identifies a mutating operation on the game.
type ActionType int

const (
	ActionEndTurn ActionType = iota
	ActionBuildRoad
	ActionBuildSettlement
	ActionBuildCity
	ActionBuildSetUp
	ActionBuyDevelopmentCard
	ActionPlayKnight
	ActionPlayRoadBuilding
	ActionPlayYearOfPlenty
	ActionPlayMonopoly
	ActionTradeMaritime
	ActionTradeDomestic
	ActionMoveRobber
	ActionDiscardHalf
)

func (t ActionType) String() string {
	switch t {
	case ActionEndTurn:
		return "end turn"
	case ActionBuildRoad:
		return "build road"
	case ActionBuildSettlement:
		return "build settlement"
	case ActionBuildCity:
		return "build city"
	case ActionBuildSetUp:
		return "set up"
	case ActionBuyDevelopmentCard:
		return "buy development card"
	case ActionPlayKnight:
		return "play knight"
	case ActionPlayRoadBuilding:
		return "play road building"
	case ActionPlayYearOfPlenty:
		return "play year of plenty"
	case ActionPlayMonopoly:
		return "play monopoly"
	case ActionTradeMaritime:
		return "maritime trade"
	case ActionTradeDomestic:
		return "domestic trade"
	case ActionMoveRobber:
		return "move robber"
	case ActionDiscardHalf:
		return "discard half"
	default:
		return "unknown"
	}
}

// Action is a flat description of one operation. Only the fields the
// ActionType consumes are meaningful; enumeration and the engine treat
// actions as comparable values.
type Action struct {
	Type ActionType

	Vertex int // settlement, city, set-up settlement
	Edge   int // road, set-up road, first road-building road
	Edge2  int // second road-building road; -1 for a single road
	Tile   int // robber destination

	Victim Color // robber steal target (NoColor for none); discarding player

	Resource  ResourceType // year of plenty first pick, monopoly
	Resource2 ResourceType // year of plenty second pick; NoResource for one

	Give ResourceType // maritime trade
	Get  ResourceType

	Offer Resources // domestic trade
	Want  Resources
	With  Color

	Discard Resources // discard half
}
