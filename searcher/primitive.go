package searcher

import (
	"math"
	"quarto/game"

	"golang.org/x/exp/rand"
)

// PrimitiveMonteCarloAction scores every (placement, piece) pair by the mean
// of its rollouts and returns the best one. Trials are dealt round-robin:
// trial i goes to placement i mod #placements and piece i mod #pieces. An
// empty axis (no placement on the first turn, no piece on the last) counts
// as a single dummy entry and yields a nil half in the result.
func PrimitiveMonteCarloAction(state *game.State, playouts int, rng *rand.Rand) game.Action {
	return primitiveMonteCarlo(state, playouts, rng, noop)
}

func primitiveMonteCarlo(state *game.State, playouts int, rng *rand.Rand, onRollout func()) game.Action {
	var places []game.Placement
	if !state.IsFirstTurn() {
		places = state.LegalPlacements()
	}
	var pieces []game.Piece
	if !state.IsLastTurn() {
		pieces = state.LegalPieces()
	}

	numPlaces, numPieces := max(len(places), 1), max(len(pieces), 1)
	values := make([][]float64, numPlaces)
	counts := make([][]int, numPlaces)
	for i := range values {
		values[i] = make([]float64, numPieces)
		counts[i] = make([]int, numPieces)
	}

	for trial := 0; trial < playouts; trial++ {
		i, j := trial%numPlaces, trial%numPieces
		next := *state
		if len(places) > 0 {
			next.Place(places[i].Row, places[i].Col)
		}
		if len(pieces) > 0 && !next.IsDone() {
			next.Select(pieces[j])
		}

		values[i][j] += 1 - playout(&next, rng)
		counts[i][j]++
		onRollout()
	}

	bestI, bestJ := 0, 0
	bestScore := math.Inf(-1)
	for i := 0; i < numPlaces; i++ {
		for j := 0; j < numPieces; j++ {
			if counts[i][j] == 0 { // Budget smaller than the grid
				continue
			}
			if mean := values[i][j] / float64(counts[i][j]); mean > bestScore {
				bestScore = mean
				bestI, bestJ = i, j
			}
		}
	}

	var place *game.Placement
	if len(places) > 0 {
		place = &places[bestI]
	}
	var piece *game.Piece
	if len(pieces) > 0 {
		piece = &pieces[bestJ]
	}
	return game.NewAction(place, piece)
}

// PrimitiveMC is the flat Monte Carlo agent.
type PrimitiveMC struct {
	search
	playouts int
}

func NewPrimitiveMC(playouts int, options ...Option) *PrimitiveMC {
	if playouts <= 0 {
		panic("Must specify a positive playout budget")
	}
	return &PrimitiveMC{search: newSearch(options), playouts: playouts}
}

func (p *PrimitiveMC) FindMove(state *game.State) game.Action {
	p.metrics.Start("primitive", p.playouts)
	action := primitiveMonteCarlo(state, p.playouts, p.rng, p.metrics.AddRollout)
	logSearch(p.metrics.Complete(), action)
	return action
}
