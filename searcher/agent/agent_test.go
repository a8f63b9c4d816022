package agent

import (
	"bytes"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("building every search policy", func(t *testing.T) {
		for policy, expected := range map[string]Agent{
			RandomPolicy:    &searcher.Random{},
			PrimitivePolicy: &searcher.PrimitiveMC{},
			MCTSPolicy:      &searcher.MCTS{},
		} {
			agent, err := New(metrics.AgentConfig{ID: 1, Policy: policy, Playouts: 20, Seed: 9}, nil)
			require.NoError(t, err)
			require.IsType(t, expected, agent)

			s := game.NewState()
			require.NoError(t, agent.FindMove(&s).Validate(&s))
		}
	})

	t.Run("rejecting unknown policies", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{ID: 2, Policy: "minimax"}, nil)
		require.ErrorContains(t, err, "unknown policy")
	})

	t.Run("rejecting search policies without a budget", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{ID: 3, Policy: MCTSPolicy}, nil)
		require.ErrorContains(t, err, "positive playout budget")
	})
}

func TestHuman(t *testing.T) {
	t.Run("selecting on the first turn", func(t *testing.T) {
		var out bytes.Buffer
		human := NewHuman(strings.NewReader("XYZZ\nWCSH\n"), &out)
		s := game.NewState()

		action := human.FindMove(&s)

		require.Nil(t, action.Placement)
		require.Equal(t, "WCSH", action.Piece.String())
		require.Contains(t, out.String(), "not a piece")
	})

	t.Run("asking again for bad placements", func(t *testing.T) {
		var out bytes.Buffer
		human := NewHuman(strings.NewReader("one two\n9 9\n0 0\n1 2\nBSTF\nBCSF\n"), &out)
		s := game.NewState()
		s.Select(game.Piece(0))
		s.Place(0, 0)
		s.Select(game.Piece(1))

		action := human.FindMove(&s)

		require.Equal(t, &game.Placement{Row: 1, Col: 2}, action.Placement)
		require.Equal(t, "BCSF", action.Piece.String())
		require.Contains(t, out.String(), "not a placement")
		require.Contains(t, out.String(), "cell is not empty or outside the board")
		require.Contains(t, out.String(), "piece already used")
		require.NoError(t, action.Validate(&s))
	})

	t.Run("skipping the selection after a winning placement", func(t *testing.T) {
		s, err := game.NewStateFromBoard([game.Size][game.Size]string{
			{"BSTF", "BCSH", "BCSF", game.EmptyCell},
			{game.EmptyCell, game.EmptyCell, game.EmptyCell, game.EmptyCell},
			{game.EmptyCell, game.EmptyCell, game.EmptyCell, game.EmptyCell},
			{game.EmptyCell, game.EmptyCell, game.EmptyCell, game.EmptyCell},
		}, "BSTH")
		require.NoError(t, err)
		human := NewHuman(strings.NewReader("0 3\n"), &bytes.Buffer{})

		action := human.FindMove(&s)

		require.Equal(t, &game.Placement{Row: 0, Col: 3}, action.Placement)
		require.Nil(t, action.Piece)
	})

	t.Run("panicking on closed input", func(t *testing.T) {
		human := NewHuman(strings.NewReader(""), &bytes.Buffer{})
		s := game.NewState()

		require.Panics(t, func() { human.FindMove(&s) })
	})
}
