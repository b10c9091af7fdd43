package main

import (
	"flag"
	"fmt"
	"os"

	"teeko/engine"
	"teeko/experiments"
	"teeko/game"
	"teeko/meta"
	"teeko/player"
	"teeko/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, selfplay or experiment")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Plies searched per move")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Goroutines scoring root moves")
	color := flag.String("color", "", "AI piece color, b or r (random if empty)")
	planPath := flag.String("plan", "", "YAML experiment plan (depth experiment if empty)")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	debug := flag.Bool("debug", false, "Log every move and search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	options := []searcher.Option{
		searcher.WithDepth(*depth),
		searcher.WithGoroutines(*goroutines),
		searcher.WithMetrics(),
	}

	switch *mode {
	case "play":
		runPlay(*color, options)
	case "selfplay":
		runSelfPlay(options)
	case "experiment":
		runExperiment(*planPath, *outDir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// runPlay plays the AI against a human on the console
func runPlay(color string, options []searcher.Option) {
	var ai *player.Player
	switch color {
	case "":
		ai = player.NewPlayer(options...)
	case game.Black.String(), game.Red.String():
		ai = player.NewPlayerWithPiece(game.Cell(color[0]), options...)
	default:
		log.Fatal().Msgf("unknown color %q", color)
	}
	human := engine.NewHumanAgent(ai.Opponent(), os.Stdin, os.Stdout)

	e := engine.LocalEngine(ai, human)
	if _, _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(e.Board.String())
	switch game.EvaluateTerminal(e.Board, ai.Piece()) {
	case 1:
		fmt.Println("AI wins! Game over.")
	case -1:
		fmt.Println("You win! Game over.")
	default:
		fmt.Println("No winner. Game over.")
	}
}

// runSelfPlay plays two AI players with the same options against each other
func runSelfPlay(options []searcher.Option) {
	e := engine.LocalEngine(
		player.NewPlayerWithPiece(game.Black, options...),
		player.NewPlayerWithPiece(game.Red, options...),
	)
	gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(e.Board.String())
	fmt.Printf("Winner: %q after %d moves in %s\n", gameMetric.Winner.String(), gameMetric.TotalMoves, gameMetric.Duration)
}

func runExperiment(planPath, outDir string) {
	plan := experiments.DepthPlan()
	if planPath != "" {
		var err error
		plan, err = experiments.LoadPlan(planPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment plan")
		}
	}
	if _, err := experiments.Run(plan, outDir); err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", plan.Name)
	}
}
