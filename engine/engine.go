package engine

import (
	"catan/game"

	"github.com/rs/zerolog/log"
)

// MaxTurns caps a game so stalled matches between weak agents still
// terminate.
const MaxTurns = 10000

// Engine drives one game to completion: the set-up snake rounds, then
// roll, produce or handle the 7, and the mover's actions until the
// turn ends or somebody wins.
type Engine struct {
	Game   *game.Game
	agents map[game.Color]Agent
}

// New wires one agent per player. Every player needs an agent.
func New(g *game.Game, agents map[game.Color]Agent) *Engine {
	for _, color := range game.AllColors {
		if g.Player(color) != nil && agents[color] == nil {
			panic("player " + color.String() + " has no agent")
		}
	}
	return &Engine{Game: g, agents: agents}
}

// Run plays the game out and returns the winner, or false when the
// turn cap was hit first.
func (e *Engine) Run() (game.Color, bool) {
	g := e.Game

	log.Info().Msgf("player %v is starting", g.Turn())

	for g.IsSetUp() {
		placements := g.LegalActions()
		placement := e.agents[g.Turn()].ChooseSetUp(g, placements)
		e.apply(placement)
	}

	for turn := 1; !g.IsGameOver() && turn <= MaxTurns; turn++ {
		e.playTurn()
	}

	winner, over := g.Winner()
	if over {
		log.Info().Msgf("player %v won", winner)
	} else {
		log.Info().Msgf("no winner after %d turns", MaxTurns)
	}
	return winner, over
}

func (e *Engine) playTurn() {
	g := e.Game
	mover := g.Turn()

	roll := g.RollDice()
	log.Debug().Msgf("player %v rolled %d", mover, roll)

	if roll == 7 {
		e.handleSeven()
	} else if err := g.ProduceResources(roll); err != nil {
		panic(err)
	}

	for {
		action := e.agents[g.Turn()].ChooseAction(g, g.LegalActions())
		e.apply(action)
		if action.Type == game.ActionEndTurn || g.IsGameOver() {
			return
		}
	}
}

// handleSeven collects discards from every oversized hand, then lets
// the mover place the robber.
func (e *Engine) handleSeven() {
	g := e.Game
	mover := g.Turn()

	for _, color := range game.AllColors {
		p := g.Player(color)
		if p == nil || p.HandSize() <= 7 {
			continue
		}
		discard := e.agents[color].ChooseDiscard(g, color, g.LegalDiscards(color))
		if err := g.DiscardHalf(color, discard); err != nil {
			panic(err)
		}
		log.Debug().Msgf("player %v discarded %v", color, discard)
	}

	move := e.agents[mover].ChooseRobber(g, g.LegalRobberMoves())
	e.apply(move)
}

// apply feeds an enumerated action back into the rules engine. The
// enumerator only produces legal actions, so a rejection is a bug.
func (e *Engine) apply(action game.Action) {
	mover := e.Game.Turn()
	if err := e.Game.Apply(action); err != nil {
		panic(err)
	}
	log.Debug().Msgf("player %v: %v", mover, action.Type)
}
