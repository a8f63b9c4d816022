package searcher

import (
	"math"
	"quarto/experiments/metrics"
	"quarto/game"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// Hyperparameters for MCTS

const C = 1.0 // Exploration constant

const ExpandThreshold = 10 // Visits before a leaf grows its children

// Rollout values, from the perspective of the player about to act
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 1 - Win
)

type Option func(s *search)

type search struct {
	rng     *rand.Rand
	metrics metrics.Collector
}

func newSearch(options []Option) search {
	s := search{metrics: metrics.NewDummyCollector()}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	return s
}

// WithRand makes the search draw from rng. A *rand.Rand is not safe for
// concurrent use, so rng must not be shared across goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(s *search) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed makes the search reproducible. Zero keeps a random seed.
func WithSeed(seed uint64) Option {
	return func(s *search) {
		if seed != 0 {
			s.rng = NewRand(seed)
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// NewRand returns a generator seeded with seed, or with a random seed if
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return rand.New(rand.NewSource(seed))
}

// ucb1 scores a child from its parent's perspective. The child's mean is
// stored from the child's mover's perspective, hence 1 - mean.
func ucb1(value float64, trials int, lnN float64) float64 {
	if trials == 0 { // Prevent division by zero
		panic("cannot compute UCB1: 0 trials")
	}

	n := float64(trials)
	return (1 - value/n) + C*math.Sqrt(2*lnN/n)
}

func randomPiece(state *game.State, rng *rand.Rand) *game.Piece {
	pieces := state.LegalPieces()
	if len(pieces) == 0 {
		return nil
	}
	return &pieces[rng.Intn(len(pieces))]
}
