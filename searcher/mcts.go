package searcher

import (
	"fmt"
	"quarto/experiments/metrics"
	"quarto/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTSAction searches a fresh tree rooted at state with playouts
// simulations and returns the most visited root action. The first turn
// picks a random piece and the last turn plays the only placement, both
// without searching.
func MCTSAction(state *game.State, playouts int, rng *rand.Rand) game.Action {
	return mctsAction(state, playouts, rng, searchStats{onRollout: noop, onExpand: noop})
}

func mctsAction(state *game.State, playouts int, rng *rand.Rand, stats searchStats) game.Action {
	if state.IsFirstTurn() {
		return game.NewAction(nil, randomPiece(state, rng))
	}
	if state.IsLastTurn() {
		place := state.LegalPlacements()[0]
		return game.NewAction(&place, nil)
	}

	root := newRoot(*state)
	for i := 0; i < playouts; i++ {
		root.evaluate(rng, stats)
	}
	return root.mostVisited().action
}

// newRoot returns an expanded root node for state.
func newRoot(state game.State) *node {
	root := newNode(state, game.Action{})
	root.expand()

	places, pieces := len(state.LegalPlacements()), len(state.LegalPieces())
	if expected := places * max(pieces, 1); len(root.children) != expected {
		panic(fmt.Sprintf("root has %d children, expected %d placements x %d pieces", len(root.children), places, pieces))
	}
	return root
}

// MCTS is the tree search agent.
type MCTS struct {
	search
	playouts int
}

func NewMCTS(playouts int, options ...Option) *MCTS {
	if playouts <= 0 {
		panic("Must specify a positive playout budget")
	}
	return &MCTS{search: newSearch(options), playouts: playouts}
}

func (m *MCTS) FindMove(state *game.State) game.Action {
	m.metrics.Start("mcts", m.playouts)
	action := mctsAction(state, m.playouts, m.rng, searchStats{
		onRollout: m.metrics.AddRollout,
		onExpand:  m.metrics.AddExpansion,
	})
	logSearch(m.metrics.Complete(), action)
	return action
}

func logSearch(metric metrics.SearchMetric, action game.Action) {
	log.Debug().
		Str("policy", metric.Policy).
		Int("playouts", metric.Playouts).
		Int("rollouts", metric.Rollouts).
		Int("expansions", metric.Expansions).
		Dur("duration", metric.Duration).
		Stringer("action", action).
		Msg("search complete")
}

func noop() {}
