package searcher

import (
	"quarto/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayout(t *testing.T) {
	t.Run("finished game with a line scores a loss for the player to act", func(t *testing.T) {
		s := blackRowState(t)
		s.Place(0, 3)
		require.Equal(t, game.Win, s.WinningStatus())

		require.Equal(t, Loss, playout(&s, newTestRand()))
	})

	t.Run("finished game without a line scores a draw", func(t *testing.T) {
		s := mustState(t, drawnBoard, "")

		require.Equal(t, Draw, playout(&s, newTestRand()))
	})

	t.Run("taking an immediate win", func(t *testing.T) {
		s := blackRowState(t)
		selected, _ := s.Selected()

		require.Equal(t, Win, playout(&s, newTestRand()))

		got, ok := s.At(0, 3)
		require.True(t, ok, "Rollout should play the winning placement")
		require.Equal(t, selected, got)
		require.Equal(t, 4, s.Placed(), "Rollout should stop right after the win")
	})

	t.Run("playing the forced last placement", func(t *testing.T) {
		s := lastTurnState(t)

		require.Equal(t, Draw, playout(&s, newTestRand()))
		require.True(t, s.IsDone())
	})

	t.Run("ending every rollout in a finished game", func(t *testing.T) {
		rng := newTestRand()
		for i := 0; i < 200; i++ {
			s := midGameState(t, rng, 4)

			value := playout(&s, rng)

			require.True(t, s.IsDone(), "Rollout should reach the end of the game")
			require.Contains(t, []float64{Loss, Draw, Win}, value)
		}
	})

	t.Run("leaving the first turn to a random selection", func(t *testing.T) {
		s := game.NewState()

		value := playout(&s, newTestRand())

		require.True(t, s.IsDone())
		require.GreaterOrEqual(t, value, 0.0)
		require.LessOrEqual(t, value, 1.0)
	})
}
