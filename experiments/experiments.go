package experiments

import (
	"context"
	"fmt"
	"quarto/engine"
	"quarto/experiments/metrics"
	"quarto/searcher/agent"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type MatchUpResult struct {
	Agent1 int     // AgentConfig.ID
	Agent2 int     // AgentConfig.ID
	Games  int     // Games played
	Score  float64 // Agent1's total: 1 per win, 0.5 per draw
}

// WinRate is Agent1's average score.
func (r MatchUpResult) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return r.Score / float64(r.Games)
}

type Report struct {
	Run      string
	Dir      string // Where the CSV files went, empty if not written
	MatchUps []MatchUpResult
}

type playedGame struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays every match up of the experiment and reports the win rate of
// each match up's first agent. Games of a match up run concurrently; each
// game builds its own agents so no search state is shared.
func Run(ctx context.Context, config Config) (Report, error) {
	if err := config.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid experiment config: %w", err)
	}

	report := Report{Run: uuid.NewString()}
	logger := log.With().Str("experiment", config.Name).Str("run", report.Run).Logger()
	logger.Info().Msgf("starting %s experiment...", config.Name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range config.MatchUps {
		agent1, agent2 := config.agent(matchUp[0]), config.agent(matchUp[1])
		logger.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.MatchUps), agent1, agent2)

		result, games, err := runMatchUp(ctx, logger, config, agent1, agent2, len(gameRecords))
		if err != nil {
			return report, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		report.MatchUps = append(report.MatchUps, result)
		for _, game := range games {
			gameRecords = append(gameRecords, game.record)
			for _, move := range game.moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: game.record.ID, MoveMetric: move})
			}
		}

		logger.Info().Msgf("completed matchup %d of %d: agent %d win rate %.3f over %d games", mi+1, len(config.MatchUps), agent1.ID, result.WinRate(), result.Games)
	}
	logger.Info().Msgf("completed %s experiment", config.Name)

	if config.OutputDir == "" {
		return report, nil
	}
	dir, err := store(config, report.Run, gameRecords, moveRecords)
	if err != nil {
		return report, err
	}
	report.Dir = dir
	logger.Info().Str("dir", dir).Msg("stored experiment results")
	return report, nil
}

func runMatchUp(ctx context.Context, logger zerolog.Logger, config Config, agent1, agent2 metrics.AgentConfig, firstID int) (MatchUpResult, []playedGame, error) {
	result := MatchUpResult{Agent1: agent1.ID, Agent2: agent2.ID}
	games := make([]playedGame, config.Games)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Workers)
	for i := 0; i < config.Games; i++ {
		i := i // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			first, second := withGameSeed(agent1, i), withGameSeed(agent2, i)
			swapped := config.SwapSeats && i%2 == 1
			if swapped {
				first, second = second, first
			}
			outcome, gameMetric, moveMetrics, err := playGame(first, second)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}

			score := outcome.FirstPlayerScore()
			if swapped {
				score = 1 - score
			}
			games[i] = playedGame{
				record: metrics.GameRecord{
					ID:          firstID + i + 1,
					FirstAgent:  first.ID,
					SecondAgent: second.ID,
					GameMetric:  gameMetric,
				},
				moves: moveMetrics,
			}

			mu.Lock()
			defer mu.Unlock()
			result.Games++
			result.Score += score
			logger.Info().Msgf("%d games: agent %d win rate %.3f", result.Games, agent1.ID, result.WinRate())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, nil, err
	}
	return result, games, nil
}

// withGameSeed derives a distinct seed per game so seeded agents do not
// replay the same game. Zero stays zero, i.e. randomly seeded.
func withGameSeed(config metrics.AgentConfig, game int) metrics.AgentConfig {
	if config.Seed != 0 {
		config.Seed += uint64(game)
	}
	return config
}

// playGame runs one game; first moves first.
func playGame(first, second metrics.AgentConfig) (engine.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	var seats [2]engine.Seat
	for i, config := range []metrics.AgentConfig{first, second} {
		collector := metrics.NewCollector()
		a, err := agent.New(config, collector)
		if err != nil {
			return engine.Result{}, metrics.GameMetric{}, nil, err
		}
		seats[i] = engine.Seat{Agent: a, Metrics: collector}
	}

	result, gameMetric, moveMetrics := engine.LocalEngine(seats).Run()
	return result, gameMetric, moveMetrics, nil
}

func store(config Config, run string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name, run)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	return writer.Dir(), nil
}
