package searcher

import (
	"quarto/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const e = game.EmptyCell

// drawnBoard is a full board without any winning line
var drawnBoard = [game.Size][game.Size]string{
	{"BSSH", "BSTH", "BCTF", "WCSF"},
	{"WSSF", "BSTF", "BCTH", "BSSF"},
	{"WCTH", "BCSH", "WSTH", "WCTF"},
	{"WSTF", "WSSH", "BCSF", "WCSH"},
}

// blackRow has three black pieces in row 0 and a black piece pending, so
// placing at (0, 3), the first empty cell, wins.
var blackRow = [game.Size][game.Size]string{
	{"BSTF", "BCSH", "BCSF", e},
	{e, e, e, e},
	{e, e, e, e},
	{e, e, e, e},
}

func mustState(t *testing.T, rows [game.Size][game.Size]string, selected string) game.State {
	t.Helper()
	s, err := game.NewStateFromBoard(rows, selected)
	require.NoError(t, err)
	return s
}

func lastTurnState(t *testing.T) game.State {
	t.Helper()
	rows := drawnBoard
	rows[3][3] = e
	return mustState(t, rows, drawnBoard[3][3])
}

func blackRowState(t *testing.T) game.State {
	t.Helper()
	return mustState(t, blackRow, "BSTH")
}

// midGameState plays a few random moves from the initial position.
func midGameState(t *testing.T, rng *rand.Rand, moves int) game.State {
	t.Helper()
	s := game.NewState()
	for i := 0; i < moves && !s.IsDone(); i++ {
		s.Apply(RandomAction(&s, rng))
	}
	require.False(t, s.IsDone(), "Pick a seed that leaves the game running")
	return s
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
