package searcher

import (
	"quarto/game"

	"golang.org/x/exp/rand"
)

// RandomAction picks a uniformly random placement and piece. No piece is
// picked when the placement wins, since the game ends there.
func RandomAction(state *game.State, rng *rand.Rand) game.Action {
	var place *game.Placement
	if !state.IsFirstTurn() {
		placements := state.LegalPlacements()
		place = &placements[rng.Intn(len(placements))]
	}

	if place != nil && state.CanPlaceThenWin(place.Row, place.Col) {
		return game.NewAction(place, nil)
	}
	return game.NewAction(place, randomPiece(state, rng))
}

type Random struct {
	search
}

func NewRandom(options ...Option) *Random {
	return &Random{search: newSearch(options)}
}

func (r *Random) FindMove(state *game.State) game.Action {
	r.metrics.Start("random", 0)
	action := RandomAction(state, r.rng)
	r.metrics.Complete()
	return action
}
