package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaritimeTrade(t *testing.T) {
	t.Run("two to one with the matching harbor", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Brick: 2}

		require.NoError(t, g.MaritimeTrade(Brick, Ore))
		require.Equal(t, Resources{Ore: 1}, blue.Resources)
	})

	t.Run("four to one without a harbor", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Lumber: 4}

		require.NoError(t, g.MaritimeTrade(Lumber, Grain))
		require.Equal(t, Resources{Grain: 1}, blue.Resources)
	})

	t.Run("three to one with a generic harbor", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Harbors[HarborGeneric] = true
		blue.Resources = Resources{Lumber: 3}

		require.NoError(t, g.MaritimeTrade(Lumber, Grain))
		require.Equal(t, Resources{Grain: 1}, blue.Resources)
	})

	t.Run("rejects trading a resource for itself", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 4}
		requireKind(t, ErrInput, g.MaritimeTrade(Brick, Brick))
	})

	t.Run("requires the bank to hold the resource", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 2}
		g.Bank[Ore] = 0
		requireKind(t, ErrNotEnoughGameCards, g.MaritimeTrade(Brick, Ore))
	})

	t.Run("requires the full rate", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Lumber: 3}
		requireKind(t, ErrInvalidResources, g.MaritimeTrade(Lumber, Grain))
	})
}

func TestDomesticTrade(t *testing.T) {
	t.Run("swaps the two hands", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 2}
		g.Player(Orange).Resources = Resources{Grain: 1}

		require.NoError(t, g.DomesticTrade(Resources{Brick: 2}, Resources{Grain: 1}, Orange))
		require.Equal(t, Resources{Grain: 1}, g.Player(Blue).Resources)
		require.Equal(t, Resources{Brick: 2}, g.Player(Orange).Resources)
	})

	t.Run("rejects trading with yourself", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.DomesticTrade(Resources{Brick: 1}, Resources{Grain: 1}, Blue))
	})

	t.Run("rejects an unknown partner", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.DomesticTrade(Resources{Brick: 1}, Resources{Grain: 1}, Red))
	})

	t.Run("rejects overlapping sides", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.DomesticTrade(Resources{Brick: 1}, Resources{Brick: 1}, Orange))
	})

	t.Run("rejects empty sides", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.DomesticTrade(Resources{}, Resources{Grain: 1}, Orange))
		requireKind(t, ErrInput, g.DomesticTrade(Resources{Brick: 1}, Resources{}, Orange))
	})

	t.Run("both hands must cover their side", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Brick: 1}
		g.Player(Orange).Resources = Resources{Grain: 1}
		requireKind(t, ErrInvalidResources, g.DomesticTrade(Resources{Brick: 2}, Resources{Grain: 1}, Orange))
		requireKind(t, ErrInvalidResources, g.DomesticTrade(Resources{Brick: 1}, Resources{Grain: 2}, Orange))
	})
}

func TestDiscardHalf(t *testing.T) {
	t.Run("discards half rounded down", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		orange := g.Player(Orange)
		orange.Resources = Resources{Brick: 5, Wool: 4}

		require.NoError(t, g.DiscardHalf(Orange, Resources{Brick: 3, Wool: 1}))
		require.Equal(t, Resources{Brick: 2, Wool: 3}, orange.Resources)
	})

	t.Run("the total must match exactly", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Orange).Resources = Resources{Brick: 5, Wool: 4}
		requireKind(t, ErrInput, g.DiscardHalf(Orange, Resources{Brick: 3}))
		requireKind(t, ErrInput, g.DiscardHalf(Orange, Resources{Brick: 5}))
	})

	t.Run("the hand must cover the discard", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Orange).Resources = Resources{Brick: 5, Wool: 4}
		requireKind(t, ErrInvalidResources, g.DiscardHalf(Orange, Resources{Grain: 4}))
	})

	t.Run("rejects an unknown color", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInput, g.DiscardHalf(White, Resources{}))
	})
}
