package game

// Static topology of the base map: 19 tiles, 54 vertices, 72 edges and
// 9 harbors. Vertices 0-29 run around the rim, 30-47 form the middle
// ring and 48-53 surround the center tile. Adjacency never changes;
// the board builds its index-based adjacency lists from these tables
// once at construction.

// tileAdjVertices lists the six corner vertices of each tile.
var tileAdjVertices = [NumTiles][6]int{
	{0, 1, 30, 47, 28, 29},
	{2, 3, 32, 31, 30, 1},
	{4, 5, 6, 33, 32, 3},
	{6, 7, 8, 35, 34, 33},
	{8, 9, 10, 11, 36, 35},
	{36, 11, 12, 13, 38, 37},
	{38, 13, 14, 15, 16, 39},
	{40, 39, 16, 17, 18, 41},
	{42, 41, 18, 19, 20, 21},
	{44, 43, 42, 21, 22, 23},
	{26, 45, 44, 23, 24, 25},
	{28, 47, 46, 45, 26, 27},
	{30, 31, 48, 53, 46, 47},
	{32, 33, 34, 49, 48, 31},
	{34, 35, 36, 37, 50, 49},
	{50, 37, 38, 39, 40, 51},
	{52, 51, 40, 41, 42, 43},
	{46, 53, 52, 43, 44, 45},
	{48, 49, 50, 51, 52, 53},
}

// vertexAdjEdges lists the incident edges of each vertex (2 on the
// rim corners, 3 elsewhere).
var vertexAdjEdges = [NumVertices][]int{
	{0, 1},
	{1, 30, 2},
	{2, 3},
	{3, 31, 4},
	{4, 5},
	{5, 6},
	{6, 32, 7},
	{7, 8},
	{8, 33, 9},
	{9, 10},
	{10, 11},
	{11, 34, 12},
	{12, 13},
	{13, 35, 14},
	{14, 15},
	{15, 16},
	{16, 36, 17},
	{17, 18},
	{18, 37, 19},
	{19, 20},
	{20, 21},
	{21, 38, 22},
	{22, 23},
	{23, 39, 24},
	{24, 25},
	{25, 26},
	{26, 40, 27},
	{27, 28},
	{28, 41, 29},
	{29, 0},
	{42, 30, 43},
	{43, 44, 60},
	{44, 31, 45},
	{45, 32, 46},
	{61, 46, 47},
	{47, 33, 48},
	{49, 48, 34},
	{62, 49, 50},
	{51, 50, 35},
	{52, 51, 36},
	{53, 63, 52},
	{54, 53, 37},
	{38, 55, 54},
	{56, 55, 64},
	{57, 56, 39},
	{40, 58, 57},
	{59, 65, 58},
	{41, 42, 59},
	{66, 60, 67},
	{67, 61, 68},
	{68, 62, 69},
	{70, 69, 63},
	{71, 70, 64},
	{65, 66, 71},
}

// vertexHarbor maps the 18 coastal vertices that touch a harbor to the
// harbor's index.
var vertexHarbor = map[int]int{
	0: 0, 29: 0,
	2: 1, 3: 1,
	6: 2, 7: 2,
	9: 3, 10: 3,
	12: 4, 13: 4,
	16: 5, 17: 5,
	19: 6, 20: 6,
	22: 7, 23: 7,
	26: 8, 27: 8,
}

// cornerTiles are the six rim tiles a token spiral may start from.
var cornerTiles = [6]int{0, 2, 4, 6, 8, 10}

// baseTileTypes is the terrain multiset of the base game.
var baseTileTypes = []TileType{
	Desert,
	Hills, Hills, Hills,
	Forest, Forest, Forest, Forest,
	Mountains, Mountains, Mountains,
	Fields, Fields, Fields, Fields,
	Pasture, Pasture, Pasture, Pasture,
}

// baseHarborTypes is the harbor multiset: one 2:1 harbor per resource
// plus four generic 3:1 harbors.
var baseHarborTypes = []HarborType{
	HarborBrick, HarborLumber, HarborOre, HarborGrain, HarborWool,
	HarborGeneric, HarborGeneric, HarborGeneric, HarborGeneric,
}

// baseTokens is the standard production token sequence before the
// spiral layout; 0 is the empty token that ends up on the desert.
var baseTokens = []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11, 0}

// baseDevelopmentCardTypes is the 25-card development deck.
var baseDevelopmentCardTypes = func() []DevelopmentCardType {
	types := make([]DevelopmentCardType, 0, 25)
	for i := 0; i < 14; i++ {
		types = append(types, Knight)
	}
	types = append(types, RoadBuilding, RoadBuilding)
	types = append(types, YearOfPlenty, YearOfPlenty)
	types = append(types, Monopoly, Monopoly)
	for i := 0; i < 5; i++ {
		types = append(types, VictoryPoint)
	}
	return types
}()
