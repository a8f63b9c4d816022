package agent

import (
	"fmt"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher"
)

type Agent interface {
	// FindMove returns the placement and selection to play in state
	FindMove(state *game.State) game.Action
}

var (
	_ Agent = (*searcher.Random)(nil)
	_ Agent = (*searcher.PrimitiveMC)(nil)
	_ Agent = (*searcher.MCTS)(nil)
	_ Agent = (*Human)(nil)
)

const (
	RandomPolicy    = "random"
	PrimitivePolicy = "primitive"
	MCTSPolicy      = "mcts"
)

// New builds a search agent from its experiment config. Each call creates
// its own random generator, so agents can play in separate goroutines.
func New(config metrics.AgentConfig, collector metrics.Collector) (Agent, error) {
	options := []searcher.Option{searcher.WithSeed(config.Seed), searcher.WithMetrics(collector)}

	switch config.Policy {
	case RandomPolicy:
		return searcher.NewRandom(options...), nil
	case PrimitivePolicy, MCTSPolicy:
		if config.Playouts <= 0 {
			return nil, fmt.Errorf("agent %d: %s needs a positive playout budget, got %d", config.ID, config.Policy, config.Playouts)
		}
		if config.Policy == PrimitivePolicy {
			return searcher.NewPrimitiveMC(config.Playouts, options...), nil
		}
		return searcher.NewMCTS(config.Playouts, options...), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown policy %q", config.ID, config.Policy)
	}
}
