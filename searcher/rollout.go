package searcher

import (
	"quarto/game"

	"golang.org/x/exp/rand"
)

// findWinningPlacement returns the first placement that completes a line.
func findWinningPlacement(state *game.State) (game.Placement, bool) {
	for _, place := range state.LegalPlacements() {
		if state.CanPlaceThenWin(place.Row, place.Col) {
			return place, true
		}
	}
	return game.Placement{}, false
}

// terminalValue scores a finished game for the player about to act. A line
// on the board was completed by the previous mover.
func terminalValue(state *game.State) float64 {
	if state.WinningStatus() == game.Win {
		return Loss
	}
	return Draw
}

// playout plays state out to the end and returns its value for the player
// about to act in state. Each ply hands control to the opponent, which flips
// the perspective. The state is consumed.
func playout(state *game.State, rng *rand.Rand) float64 {
	flipped := false
	value := func(v float64) float64 {
		if flipped {
			return 1 - v
		}
		return v
	}

	for {
		if state.IsDone() {
			return value(terminalValue(state))
		}

		if _, ok := state.Selected(); ok {
			// Greedy shortcut: take an immediate win
			if place, ok := findWinningPlacement(state); ok {
				state.Place(place.Row, place.Col)
				return value(Win)
			}

			action := RandomAction(state, rng)
			state.Place(action.Placement.Row, action.Placement.Col)
			if state.IsDone() {
				if state.WinningStatus() == game.Win {
					return value(Win)
				}
				return value(Draw)
			}
		}

		state.Select(*randomPiece(state, rng))
		flipped = !flipped
	}
}
