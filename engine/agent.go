package engine

import (
	"catan/game"
)

// Agent decides among the choices the rules engine enumerates. The
// engine only ever offers legal choices, so implementations pick, they
// do not validate.
type Agent interface {
	// ChooseSetUp picks one of the legal set-up placements.
	ChooseSetUp(g *game.Game, placements []game.Action) game.Action
	// ChooseAction picks the next turn action; ending the turn is
	// always among the options.
	ChooseAction(g *game.Game, actions []game.Action) game.Action
	// ChooseDiscard picks which half of the hand to give up after a 7.
	ChooseDiscard(g *game.Game, color game.Color, discards []game.Resources) game.Resources
	// ChooseRobber picks the robber destination and victim after a 7.
	ChooseRobber(g *game.Game, moves []game.Action) game.Action
}

// RandomAgent picks uniformly among the offered choices.
type RandomAgent struct {
	rng game.Rand
}

func NewRandomAgent(rng game.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) ChooseSetUp(_ *game.Game, placements []game.Action) game.Action {
	return placements[a.rng.Intn(len(placements))]
}

func (a *RandomAgent) ChooseAction(_ *game.Game, actions []game.Action) game.Action {
	return actions[a.rng.Intn(len(actions))]
}

func (a *RandomAgent) ChooseDiscard(_ *game.Game, _ game.Color, discards []game.Resources) game.Resources {
	return discards[a.rng.Intn(len(discards))]
}

func (a *RandomAgent) ChooseRobber(_ *game.Game, moves []game.Action) game.Action {
	return moves[a.rng.Intn(len(moves))]
}
