package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"quarto/engine"
	"quarto/experiments"
	"quarto/experiments/metrics"
	"quarto/meta"
	"quarto/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment file, overrides the defaults below")
	games := flag.Int("games", meta.GAMES, "Number of games per match up")
	playouts := flag.Int("playouts", meta.PLAYOUTS, "Playouts per move of the search agent")
	workers := flag.Int("workers", meta.WORKERS, "Number of games played at once")
	output := flag.String("output", "", "Directory for CSV results, none if empty")
	policy := flag.String("policy", agent.PrimitivePolicy, "Policy of the search agent: random, primitive or mcts")
	human := flag.Bool("human", false, "Play one game against the search agent from the terminal")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	searchConfig := metrics.AgentConfig{ID: 1, Policy: *policy, Playouts: *playouts}
	if *human {
		playHuman(searchConfig)
		return
	}

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
	} else {
		config.Games = *games
		config.Workers = *workers
		config.SwapSeats = true
		config.Agents[0] = searchConfig
	}
	if *output != "" {
		config.OutputDir = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := experiments.Run(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, result := range report.MatchUps {
		fmt.Printf("agent %d vs agent %d: win rate %.3f over %d games\n", result.Agent1, result.Agent2, result.WinRate(), result.Games)
	}
}

// playHuman seats the terminal player second, against the search agent.
func playHuman(config metrics.AgentConfig) {
	collector := metrics.NewCollector()
	opponent, err := agent.New(config, collector)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agent")
	}

	e := engine.LocalEngine([2]engine.Seat{
		{Agent: opponent, Metrics: collector},
		{Agent: agent.NewHuman(os.Stdin, os.Stdout)},
	})
	result, _, _ := e.Run()

	fmt.Print(result.State)
	switch result.Winner {
	case engine.Draw:
		fmt.Println("Draw!")
	case 1:
		fmt.Println("You win!")
	default:
		fmt.Println("You lose!")
	}
}
