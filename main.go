package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"catan/engine"
	"catan/game"
)

var cli struct {
	Games   int    `default:"10" help:"Number of games to play."`
	Players int    `default:"4" help:"Number of players (2 to 4)."`
	Seed    uint64 `default:"0" help:"Random seed; 0 seeds from the clock."`
	Verbose bool   `help:"Log every roll and action."`
}

func main() {
	kong.Parse(&cli, kong.Description("Random self-play over the catan rules engine."))

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cli.Players < 2 || cli.Players > 4 {
		log.Fatal().Msgf("players must be 2 to 4, got %d", cli.Players)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().Msgf("playing %d games with %d players, seed %d", cli.Games, cli.Players, seed)

	colors := game.AllColors[:cli.Players]
	wins := map[game.Color]int{}
	capped := 0

	for i := 0; i < cli.Games; i++ {
		g, err := game.NewGame(colors, game.WithRand(rng))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create game")
		}

		agents := map[game.Color]engine.Agent{}
		for _, color := range colors {
			agents[color] = engine.NewRandomAgent(rng)
		}

		winner, ok := engine.New(g, agents).Run()
		if ok {
			wins[winner]++
		} else {
			capped++
		}
	}

	for _, color := range colors {
		log.Info().Msgf("player %v won %d of %d games", color, wins[color], cli.Games)
	}
	if capped > 0 {
		log.Info().Msgf("%d games hit the turn cap", capped)
	}
}
