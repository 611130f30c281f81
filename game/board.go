package game

// Tile is one of the 19 hexagonal map cells.
type Tile struct {
	Idx       int
	Terrain   TileType
	Token     int // production token 2-12; 0 on the desert
	HasRobber bool

	AdjVertices [6]int
}

// Vertex is one of the 54 building sites. Owner is NoColor while the
// vertex is empty.
type Vertex struct {
	Idx    int
	Harbor HarborType
	Owner  Color
	IsCity bool

	AdjEdges    []int
	AdjTiles    []int
	AdjVertices []int
}

// Edge is one of the 72 road sites. Owner is NoColor while the edge is
// empty; roads are never upgraded.
type Edge struct {
	Idx   int
	Owner Color

	AdjEdges    []int
	AdjVertices [2]int
}

// Harbor associates a trade rate with the two vertices it touches.
type Harbor struct {
	Type     HarborType
	Vertices [2]int
}

// Board is the game map. Topology (the adjacency lists) is fixed at
// construction; only occupancy and the robber location mutate, and
// only through the rules engine.
type Board struct {
	Tiles    [NumTiles]Tile
	Vertices [NumVertices]Vertex
	Edges    [NumEdges]Edge
	Harbors  [NumHarbors]Harbor

	RobberTile int

	tokenToTiles map[int][]int
}

// newBoard builds a board from explicit terrain, token and harbor
// permutations. All multisets are validated against the base game.
func newBoard(tileTypes []TileType, tokens []int, harborTypes []HarborType) (*Board, error) {
	if err := validateTileTypes(tileTypes); err != nil {
		return nil, err
	}
	if err := validateTokens(tokens, tileTypes); err != nil {
		return nil, err
	}
	if err := validateHarborTypes(harborTypes); err != nil {
		return nil, err
	}

	b := &Board{tokenToTiles: make(map[int][]int)}

	for i := range b.Tiles {
		b.Tiles[i] = Tile{
			Idx:         i,
			Terrain:     tileTypes[i],
			Token:       tokens[i],
			HasRobber:   tileTypes[i] == Desert,
			AdjVertices: tileAdjVertices[i],
		}
		if tileTypes[i] == Desert {
			b.RobberTile = i
		}
		if tokens[i] != 0 {
			b.tokenToTiles[tokens[i]] = append(b.tokenToTiles[tokens[i]], i)
		}
	}

	for i := range b.Vertices {
		v := &b.Vertices[i]
		v.Idx = i
		v.Owner = NoColor
		v.Harbor = NoHarbor
		if h, ok := vertexHarbor[i]; ok {
			v.Harbor = harborTypes[h]
		}
		v.AdjEdges = vertexAdjEdges[i]
		for t := range tileAdjVertices {
			for _, av := range tileAdjVertices[t] {
				if av == i {
					v.AdjTiles = append(v.AdjTiles, t)
				}
			}
		}
	}

	for i := range b.Edges {
		e := &b.Edges[i]
		e.Idx = i
		e.Owner = NoColor
		n := 0
		for v := range vertexAdjEdges {
			for _, ae := range vertexAdjEdges[v] {
				if ae == i {
					e.AdjVertices[n] = v
					n++
				}
			}
		}
		for _, v := range e.AdjVertices {
			for _, ae := range vertexAdjEdges[v] {
				if ae != i {
					e.AdjEdges = append(e.AdjEdges, ae)
				}
			}
		}
	}

	// Vertex-to-vertex adjacency via the shared edges.
	for i := range b.Vertices {
		v := &b.Vertices[i]
		for _, ae := range v.AdjEdges {
			for _, other := range b.Edges[ae].AdjVertices {
				if other != i {
					v.AdjVertices = append(v.AdjVertices, other)
				}
			}
		}
	}

	for h := range b.Harbors {
		b.Harbors[h].Type = harborTypes[h]
	}
	harborSlot := [NumHarbors]int{}
	for v := 0; v < NumVertices; v++ {
		if h, ok := vertexHarbor[v]; ok {
			b.Harbors[h].Vertices[harborSlot[h]] = v
			harborSlot[h]++
		}
	}

	return b, nil
}

// TilesWithToken returns the tiles bearing the given production token.
func (b *Board) TilesWithToken(token int) []int {
	return b.tokenToTiles[token]
}

func validateTileTypes(tileTypes []TileType) error {
	if len(tileTypes) != NumTiles {
		return newError(ErrInput, "tile types must have %d tiles, got %d", NumTiles, len(tileTypes))
	}
	var want, got [Pasture + 1]int
	for _, t := range baseTileTypes {
		want[t]++
	}
	for _, t := range tileTypes {
		if t < Desert || t > Pasture {
			return newError(ErrInput, "invalid tile type %d", t)
		}
		got[t]++
	}
	if got != want {
		return newError(ErrInput, "tile types must match the base terrain counts, got %v", tileTypes)
	}
	return nil
}

func validateTokens(tokens []int, tileTypes []TileType) error {
	if len(tokens) != NumTiles {
		return newError(ErrInput, "tokens must have %d entries, got %d", NumTiles, len(tokens))
	}
	want := map[int]int{}
	for _, t := range baseTokens {
		want[t]++
	}
	got := map[int]int{}
	for _, t := range tokens {
		got[t]++
	}
	for t, n := range want {
		if got[t] != n {
			return newError(ErrInput, "tokens must match the base token counts, got %v", tokens)
		}
	}
	for i, t := range tokens {
		if (t == 0) != (tileTypes[i] == Desert) {
			return newError(ErrInput, "the empty token must be on the desert tile")
		}
	}
	return nil
}

func validateHarborTypes(harborTypes []HarborType) error {
	if len(harborTypes) != NumHarbors {
		return newError(ErrInput, "harbor types must have %d harbors, got %d", NumHarbors, len(harborTypes))
	}
	var want, got [NumHarborTypes]int
	for _, h := range baseHarborTypes {
		want[h]++
	}
	for _, h := range harborTypes {
		if h < HarborBrick || h > HarborGeneric {
			return newError(ErrInput, "invalid harbor type %d", h)
		}
		got[h]++
	}
	if got != want {
		return newError(ErrInput, "harbor types must match the base harbor counts, got %v", harborTypes)
	}
	return nil
}

// spiralTokens lays the standard token sequence around the board in a
// spiral from a random corner tile, keeping the empty token on the
// desert.
func spiralTokens(desertIdx int, rng Rand) []int {
	start := cornerTiles[rng.Intn(len(cornerTiles))]
	offset := 12 - start

	outer := append([]int(nil), baseTokens[:12]...)
	inner := append([]int(nil), baseTokens[12:18]...)

	switch {
	case desertIdx < 12:
		pos := (11 + (1 - desertIdx) + start + 24) % 12
		outer = insertAt(outer, pos, 0)
		inner = insertAt(inner, 0, outer[len(outer)-1])
		outer = outer[:len(outer)-1]
	case desertIdx < 18:
		pos := (5 + (13 - desertIdx) + start/2 + 12) % 6
		inner = insertAt(inner, pos, 0)
	default:
		inner = append(inner, 0)
	}
	center := inner[len(inner)-1]
	inner = inner[:len(inner)-1]

	outer = rotateRight(outer, offset%len(outer))
	inner = rotateRight(inner, (offset/2)%len(inner))

	outer = keepFirstReverseRest(outer)
	inner = keepFirstReverseRest(inner)

	tokens := make([]int, 0, NumTiles)
	tokens = append(tokens, outer...)
	tokens = append(tokens, inner...)
	return append(tokens, center)
}

func insertAt(s []int, i, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func rotateRight(s []int, k int) []int {
	if k == 0 {
		return s
	}
	out := make([]int, 0, len(s))
	out = append(out, s[len(s)-k:]...)
	return append(out, s[:len(s)-k]...)
}

func keepFirstReverseRest(s []int) []int {
	out := make([]int, 0, len(s))
	out = append(out, s[0])
	for i := len(s) - 1; i >= 1; i-- {
		out = append(out, s[i])
	}
	return out
}
