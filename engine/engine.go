package engine

import (
	"quarto/experiments/metrics"
	"quarto/game"
)

// MaxMoves bounds a game: one selection, then a placement and selection per
// piece, the last placement standing alone.
const MaxMoves = game.NumPieces + 1

const Draw = -1

type Engine interface {
	// Run plays a game till a line is completed or the board is full
	Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Result struct {
	Winner int // Player 0 or 1, Draw if nobody won
	State  game.State
}

// FirstPlayerScore is 1 if player 0 won, 0 if player 1 won and 0.5 on a draw.
func (r Result) FirstPlayerScore() float64 {
	switch r.Winner {
	case 0:
		return 1
	case 1:
		return 0
	default:
		return 0.5
	}
}
