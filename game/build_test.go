package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRoad(t *testing.T) {
	t.Run("builds and pays the bank", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Brick: 1, Lumber: 1}

		bankBrick := g.Bank[Brick]
		require.NoError(t, g.BuildRoad(1))
		require.Equal(t, Blue, g.Board.Edges[1].Owner)
		require.Equal(t, 12, blue.RoadsLeft)
		require.Equal(t, Resources{}, blue.Resources)
		require.Equal(t, bankBrick+1, g.Bank[Brick])
	})

	t.Run("requires a connected edge", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 1, Lumber: 1}
		requireKind(t, ErrBuildLocation, g.BuildRoad(40))
	})

	t.Run("rejects an occupied edge", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 1, Lumber: 1}
		requireKind(t, ErrBuildLocation, g.BuildRoad(0))
		requireKind(t, ErrBuildLocation, g.BuildRoad(10), "opponent roads block too")
	})

	t.Run("requires resources", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{}
		requireKind(t, ErrInvalidResources, g.BuildRoad(1))
	})

	t.Run("requires road pieces", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Brick: 1, Lumber: 1}
		blue.RoadsLeft = 0
		requireKind(t, ErrNotEnoughPieces, g.BuildRoad(1))
	})

	t.Run("rejects an out of range edge", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.BuildRoad(NumEdges))
		requireKind(t, ErrInput, g.BuildRoad(-1))
	})
}

func TestBuildSettlement(t *testing.T) {
	// extendRoad pushes blue's network along the rim so vertex 2 is
	// two roads away from the vertex 0 settlement.
	extendRoad := func(t *testing.T, g *Game) {
		g.Player(Blue).Resources = Resources{Brick: 2, Lumber: 2}
		require.NoError(t, g.BuildRoad(1))
		require.NoError(t, g.BuildRoad(2))
	}

	t.Run("builds on a reachable vertex", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		extendRoad(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Brick: 1, Lumber: 1, Grain: 1, Wool: 1}

		require.NoError(t, g.BuildSettlement(2))
		require.Equal(t, Blue, g.Board.Vertices[2].Owner)
		require.Equal(t, 3, blue.VictoryPoints)
		require.Equal(t, 2, blue.SettlementsLeft)
		require.Equal(t, Resources{}, blue.Resources)
	})

	t.Run("requires a road to the vertex", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 1, Lumber: 1, Grain: 1, Wool: 1}
		requireKind(t, ErrBuildLocation, g.BuildSettlement(20))
	})

	t.Run("distance rule blocks neighbours of buildings", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 2, Lumber: 2, Grain: 1, Wool: 1}
		require.NoError(t, g.BuildRoad(1))
		requireKind(t, ErrBuildLocation, g.BuildSettlement(1))
	})

	t.Run("rejects an occupied vertex", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 1, Lumber: 1, Grain: 1, Wool: 1}
		requireKind(t, ErrBuildLocation, g.BuildSettlement(0))
	})

	t.Run("requires resources", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		extendRoad(t, g)
		g.Player(Blue).Resources = Resources{Grain: 1, Wool: 1}
		requireKind(t, ErrInvalidResources, g.BuildSettlement(2))
	})

	t.Run("requires settlement pieces", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		extendRoad(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Brick: 1, Lumber: 1, Grain: 1, Wool: 1}
		blue.SettlementsLeft = 0
		requireKind(t, ErrNotEnoughPieces, g.BuildSettlement(2))
	})
}

func TestBuildCity(t *testing.T) {
	t.Run("upgrades an own settlement", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Grain: 2, Ore: 3}

		require.NoError(t, g.BuildCity(0))
		require.True(t, g.Board.Vertices[0].IsCity)
		require.Equal(t, 3, blue.VictoryPoints)
		require.Equal(t, 4, blue.SettlementsLeft, "the settlement piece returns")
		require.Equal(t, 3, blue.CitiesLeft)
		require.Equal(t, Resources{}, blue.Resources)
	})

	t.Run("rejects foreign and empty vertices", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Grain: 2, Ore: 3}
		requireKind(t, ErrBuildLocation, g.BuildCity(10), "orange settlement")
		requireKind(t, ErrBuildLocation, g.BuildCity(20), "empty vertex")
	})

	t.Run("rejects upgrading a city twice", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Grain: 4, Ore: 6}
		require.NoError(t, g.BuildCity(0))
		requireKind(t, ErrBuildLocation, g.BuildCity(0))
	})

	t.Run("requires resources", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Grain: 2, Ore: 2}
		requireKind(t, ErrInvalidResources, g.BuildCity(0))
	})
}

func TestEndTurn(t *testing.T) {
	g := newTestGame(t)
	runSetUp(t, g)

	require.Equal(t, Blue, g.Turn())
	require.NoError(t, g.EndTurn())
	require.Equal(t, Orange, g.Turn())
	require.NoError(t, g.EndTurn())
	require.Equal(t, Blue, g.Turn())
	require.Equal(t, 4, g.Round, "two full rounds of set-up plus one of play")
}
