package game

// Color identifies a player.
type Color int

const (
	Blue Color = iota
	Orange
	Red
	White
)

// NoColor marks an empty vertex/edge or the absence of a robber victim.
const NoColor Color = -1

// AllColors lists the player colors in their canonical order.
var AllColors = []Color{Blue, Orange, Red, White}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Red:
		return "red"
	case White:
		return "white"
	default:
		return "none"
	}
}

// TileType is the terrain of a tile. Every terrain except the desert
// produces one resource type.
type TileType int

const (
	Desert TileType = iota
	Hills
	Forest
	Mountains
	Fields
	Pasture
)

// Resource returns the resource a terrain produces. Only valid for
// non-desert terrains.
func (t TileType) Resource() ResourceType {
	return ResourceType(t - 1)
}

// ResourceType is one of the five tradable resources.
type ResourceType int

const (
	Brick ResourceType = iota
	Lumber
	Ore
	Grain
	Wool
)

const NumResourceTypes = 5

// NoResource marks an absent second pick for year of plenty.
const NoResource ResourceType = -1

func (r ResourceType) String() string {
	switch r {
	case Brick:
		return "brick"
	case Lumber:
		return "lumber"
	case Ore:
		return "ore"
	case Grain:
		return "grain"
	case Wool:
		return "wool"
	default:
		return "none"
	}
}

// Resources holds an amount per resource type. The zero value is an
// empty hand.
type Resources [NumResourceTypes]int

// Total returns the number of resource cards in the set.
func (r Resources) Total() int {
	total := 0
	for _, amount := range r {
		total += amount
	}
	return total
}

// HarborType is the trade rate a harbor grants: 2:1 for one specific
// resource, or 3:1 generic.
type HarborType int

const (
	HarborBrick HarborType = iota
	HarborLumber
	HarborOre
	HarborGrain
	HarborWool
	HarborGeneric
)

const NumHarborTypes = 6

// NoHarbor marks a vertex without a harbor.
const NoHarbor HarborType = -1

// BuildingType distinguishes settlements from cities.
type BuildingType int

const (
	Settlement BuildingType = iota
	City
)

// DevelopmentCardType is one of the five development cards.
type DevelopmentCardType int

const (
	Knight DevelopmentCardType = iota
	RoadBuilding
	YearOfPlenty
	Monopoly
	VictoryPoint
)

// DevelopmentCard is a drawn development card. Cards bought this turn
// are not playable until the buyer's next turn.
type DevelopmentCard struct {
	Type     DevelopmentCardType
	Playable bool
}

const (
	NumTiles    = 19
	NumVertices = 54
	NumEdges    = 72
	NumHarbors  = 9

	WinningVictoryPoints = 10

	// Starting bank count per resource type.
	BankResourceCount = 19

	StartingSettlements = 5
	StartingCities      = 4
	StartingRoads       = 15
)

// Building costs.
var (
	RoadCost            = Resources{Brick: 1, Lumber: 1}
	SettlementCost      = Resources{Brick: 1, Lumber: 1, Grain: 1, Wool: 1}
	CityCost            = Resources{Grain: 2, Ore: 3}
	DevelopmentCardCost = Resources{Ore: 1, Grain: 1, Wool: 1}
)
