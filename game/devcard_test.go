package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// giveCard hands the current player a card that is already playable.
func giveCard(g *Game, color Color, cardType DevelopmentCardType) {
	p := g.Player(color)
	p.DevelopmentCards = append(p.DevelopmentCards, DevelopmentCard{Type: cardType, Playable: true})
}

func TestBuyDevelopmentCard(t *testing.T) {
	t.Run("draws from the top of the deck", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Ore: 1, Grain: 1, Wool: 1}

		deckSize := len(g.DevelopmentCards)
		require.NoError(t, g.BuyDevelopmentCard())
		require.Len(t, g.DevelopmentCards, deckSize-1)
		require.Len(t, blue.DevelopmentCards, 1)
		require.False(t, blue.DevelopmentCards[0].Playable, "fresh cards wait a turn")
		require.Equal(t, Resources{}, blue.Resources)
	})

	t.Run("a victory point card scores on draw", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Ore: 1, Grain: 1, Wool: 1}

		// The unshuffled deck ends in victory point cards.
		require.NoError(t, g.BuyDevelopmentCard())
		require.Equal(t, VictoryPoint, blue.DevelopmentCards[0].Type)
		require.Equal(t, 3, blue.VictoryPoints)
	})

	t.Run("bought cards become playable next turn", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		blue := g.Player(Blue)
		blue.Resources = Resources{Ore: 1, Grain: 1, Wool: 1}
		g.DevelopmentCards = []DevelopmentCard{{Type: Knight}}

		require.NoError(t, g.BuyDevelopmentCard())
		require.Equal(t, -1, blue.findPlayableCard(Knight))
		require.NoError(t, g.EndTurn())
		require.NotEqual(t, -1, blue.findPlayableCard(Knight))
	})

	t.Run("requires cards in the deck", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		g.Player(Blue).Resources = Resources{Ore: 1, Grain: 1, Wool: 1}
		g.DevelopmentCards = nil
		requireKind(t, ErrNotEnoughGameCards, g.BuyDevelopmentCard())
	})

	t.Run("requires resources", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrInvalidResources, g.BuyDevelopmentCard())
	})
}

func TestPlayKnight(t *testing.T) {
	t.Run("moves the robber, steals and counts the knight", func(t *testing.T) {
		g := newTestGame(t, WithWeightedChoice(func(Resources) ResourceType { return Brick }))
		runSetUp(t, g)
		giveCard(g, Blue, Knight)

		require.NoError(t, g.PlayKnight(4, Orange))
		require.Equal(t, 4, g.Board.RobberTile)
		require.Equal(t, 1, g.Player(Blue).KnightsPlayed)
		require.Empty(t, g.Player(Blue).DevelopmentCards)
		require.Equal(t, Resources{Brick: 2}, g.Player(Blue).Resources)
	})

	t.Run("requires a playable knight", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		requireKind(t, ErrDevelopmentCard, g.PlayKnight(4, Orange))

		blue := g.Player(Blue)
		blue.DevelopmentCards = append(blue.DevelopmentCards, DevelopmentCard{Type: Knight})
		requireKind(t, ErrDevelopmentCard, g.PlayKnight(4, Orange), "cards bought this turn are not playable")
	})

	t.Run("keeps the card when the robber move is illegal", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, Knight)

		requireKind(t, ErrRobber, g.PlayKnight(18, NoColor))
		require.Len(t, g.Player(Blue).DevelopmentCards, 1)
		require.Zero(t, g.Player(Blue).KnightsPlayed)
	})
}

func TestLargestArmy(t *testing.T) {
	g := newTestGame(t)
	runSetUp(t, g)
	blue, orange := g.Player(Blue), g.Player(Orange)
	blue.Resources, orange.Resources = Resources{}, Resources{}

	for i := 0; i < 3; i++ {
		giveCard(g, Blue, Knight)
	}
	for i := 0; i < 4; i++ {
		giveCard(g, Orange, Knight)
	}

	// Robber destinations without opponents so no steal interferes.
	require.NoError(t, g.PlayKnight(9, NoColor))
	require.NoError(t, g.PlayKnight(16, NoColor))
	require.Nil(t, g.LargestArmyHolder, "two knights are not enough")

	require.NoError(t, g.PlayKnight(9, NoColor))
	require.Same(t, blue, g.LargestArmyHolder)
	require.Equal(t, 4, blue.VictoryPoints)

	require.NoError(t, g.EndTurn())
	require.NoError(t, g.PlayKnight(16, NoColor))
	require.NoError(t, g.PlayKnight(9, NoColor))
	require.NoError(t, g.PlayKnight(16, NoColor))
	require.Same(t, blue, g.LargestArmyHolder, "a tie does not transfer the award")
	require.Equal(t, 2, orange.VictoryPoints)

	require.NoError(t, g.PlayKnight(9, NoColor))
	require.Same(t, orange, g.LargestArmyHolder, "a strict improvement transfers it")
	require.Equal(t, 4, orange.VictoryPoints)
	require.Equal(t, 2, blue.VictoryPoints)
}

func TestPlayRoadBuilding(t *testing.T) {
	t.Run("builds two free roads", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)

		require.NoError(t, g.PlayRoadBuilding(1, 2))
		require.Equal(t, Blue, g.Board.Edges[1].Owner)
		require.Equal(t, Blue, g.Board.Edges[2].Owner)
		require.Equal(t, Resources{Brick: 1}, g.Player(Blue).Resources, "no resources are spent")
		require.Empty(t, g.Player(Blue).DevelopmentCards)
	})

	t.Run("only the second road may chain off the first", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)

		// Edge 2 touches blue's network only through edge 1, so the
		// reversed order has no anchor for its first road.
		requireKind(t, ErrBuildLocation, g.PlayRoadBuilding(2, 1))
		require.NoError(t, g.PlayRoadBuilding(1, 2))
	})

	t.Run("rejects the same edge twice", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)
		requireKind(t, ErrInput, g.PlayRoadBuilding(1, 1))
	})

	t.Run("a single road is only allowed with one piece left", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)
		requireKind(t, ErrInput, g.PlayRoadBuilding(1, -1))

		g.Player(Blue).RoadsLeft = 1
		require.NoError(t, g.PlayRoadBuilding(1, -1))
	})

	t.Run("requires road pieces", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)
		g.Player(Blue).RoadsLeft = 0
		requireKind(t, ErrNotEnoughPieces, g.PlayRoadBuilding(1, 2))
	})

	t.Run("both edges must connect", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, RoadBuilding)
		requireKind(t, ErrBuildLocation, g.PlayRoadBuilding(40, 41))
		requireKind(t, ErrBuildLocation, g.PlayRoadBuilding(1, 40))
	})
}

func TestPlayYearOfPlenty(t *testing.T) {
	t.Run("takes two from the bank", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, YearOfPlenty)

		require.NoError(t, g.PlayYearOfPlenty(Ore, Ore))
		require.Equal(t, Resources{Brick: 1, Ore: 2}, g.Player(Blue).Resources)
		require.Equal(t, BankResourceCount-2, g.Bank[Ore])
	})

	t.Run("takes one when the bank holds one card", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, YearOfPlenty)
		g.Bank = Resources{Ore: 1}

		requireKind(t, ErrInput, g.PlayYearOfPlenty(Ore, Ore))
		require.NoError(t, g.PlayYearOfPlenty(Ore, NoResource))
		require.Zero(t, g.Bank.Total())
	})

	t.Run("requires the bank to cover the picks", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, YearOfPlenty)
		g.Bank = Resources{Ore: 1, Grain: 5}

		requireKind(t, ErrNotEnoughGameCards, g.PlayYearOfPlenty(Ore, Ore))
		require.Len(t, g.Player(Blue).DevelopmentCards, 1, "the card is kept on failure")
	})
}

func TestPlayMonopoly(t *testing.T) {
	t.Run("takes every card of the resource", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, Monopoly)
		g.Player(Orange).Resources = Resources{Lumber: 5, Wool: 2}

		require.NoError(t, g.PlayMonopoly(Lumber))
		require.Equal(t, Resources{Brick: 1, Lumber: 5}, g.Player(Blue).Resources)
		require.Equal(t, Resources{Wool: 2}, g.Player(Orange).Resources)
	})

	t.Run("works with an empty bank", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, Monopoly)
		g.Bank = Resources{}
		g.Player(Orange).Resources = Resources{Wool: 3}

		require.NoError(t, g.PlayMonopoly(Wool))
		require.Equal(t, 3, g.Player(Blue).Resources[Wool])
	})

	t.Run("an empty haul is still a play", func(t *testing.T) {
		g := newTestGame(t)
		runSetUp(t, g)
		giveCard(g, Blue, Monopoly)
		g.Player(Orange).Resources = Resources{}

		require.NoError(t, g.PlayMonopoly(Ore))
		require.Empty(t, g.Player(Blue).DevelopmentCards)
	})
}
