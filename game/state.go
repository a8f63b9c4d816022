package game

import (
	"fmt"
	"math/bits"
	"strings"
)

const Size = 4

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

const fullPool = uint16(1<<NumPieces - 1)

// State is the full game position. It holds no references, so a plain
// assignment (next := *state) is an independent copy.
type State struct {
	turn         int
	unused       uint16 // bit p set if Piece(p) is still in the pool
	board        [Size][Size]Piece
	activePlayer int
	selected     Piece
}

// NewState returns the initial position: empty board, all 16 pieces in the
// pool and nothing selected yet.
func NewState() State {
	s := State{
		unused:   fullPool,
		selected: NoPiece,
	}
	for row := range s.board {
		for col := range s.board[row] {
			s.board[row][col] = NoPiece
		}
	}
	return s
}

// EmptyCell is the code NewStateFromBoard reads as an empty cell
const EmptyCell = "...."

// NewStateFromBoard sets up a mid-game position from piece codes, with
// EmptyCell for empty cells and "" for no pending piece. Every piece on the
// board or pending counts as one past selection.
func NewStateFromBoard(rows [Size][Size]string, selected string) (State, error) {
	s := NewState()
	take := func(code string) (Piece, error) {
		p, err := ParsePiece(code)
		if err != nil {
			return NoPiece, err
		}
		if !s.IsUnused(p) {
			return NoPiece, fmt.Errorf("piece %s used twice", p)
		}
		s.unused &^= 1 << p
		s.turn++
		return p, nil
	}

	for row := range rows {
		for col, code := range rows[row] {
			if code == EmptyCell {
				continue
			}
			p, err := take(code)
			if err != nil {
				return State{}, fmt.Errorf("failed to read cell (%d, %d): %w", row, col, err)
			}
			s.board[row][col] = p
		}
	}
	if selected != "" {
		p, err := take(selected)
		if err != nil {
			return State{}, fmt.Errorf("failed to read selected piece: %w", err)
		}
		s.selected = p
	}
	s.activePlayer = s.turn % 2
	return s, nil
}

func (s *State) Turn() int {
	return s.turn
}

// ActivePlayer is the player (0 or 1) who places the pending piece.
func (s *State) ActivePlayer() int {
	return s.activePlayer
}

func (s *State) IsFirstPlayer() bool {
	return s.activePlayer == 0
}

// Selected returns the piece waiting to be placed, if any.
func (s *State) Selected() (Piece, bool) {
	return s.selected, s.selected != NoPiece
}

// At returns the piece at the given cell, if any.
func (s *State) At(row, col int) (Piece, bool) {
	p := s.board[row][col]
	return p, p != NoPiece
}

func (s *State) Unused() int {
	return bits.OnesCount16(s.unused)
}

func (s *State) IsUnused(p Piece) bool {
	return p.IsValid() && s.unused&(1<<p) != 0
}

func (s *State) Placed() int {
	placed := 0
	for row := range s.board {
		for col := range s.board[row] {
			if s.board[row][col] != NoPiece {
				placed++
			}
		}
	}
	return placed
}

// LegalPlacements returns the empty cells in row-major order.
func (s *State) LegalPlacements() []Placement {
	placements := make([]Placement, 0, Size*Size)
	for row := range s.board {
		for col := range s.board[row] {
			if s.board[row][col] == NoPiece {
				placements = append(placements, Placement{Row: row, Col: col})
			}
		}
	}
	return placements
}

// LegalPieces returns the pool in ascending piece order.
func (s *State) LegalPieces() []Piece {
	pieces := make([]Piece, 0, s.Unused())
	for pool := s.unused; pool != 0; pool &= pool - 1 {
		pieces = append(pieces, Piece(bits.TrailingZeros16(pool)))
	}
	return pieces
}

// IsFirstTurn reports whether no piece was ever selected, so there is
// nothing to place yet.
func (s *State) IsFirstTurn() bool {
	return s.turn == 0
}

// IsLastTurn reports whether the pending piece is the last one: it must be
// placed and no selection follows.
func (s *State) IsLastTurn() bool {
	return s.unused == 0 && s.selected != NoPiece
}

// Place puts the selected piece on an empty cell. Placing on an occupied
// cell or without a selected piece is a bug in the caller and panics.
func (s *State) Place(row, col int) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("cannot place at (%d, %d): outside the board", row, col))
	}
	if s.selected == NoPiece {
		panic(fmt.Sprintf("cannot place at (%d, %d): no piece selected", row, col))
	}
	if s.board[row][col] != NoPiece {
		panic(fmt.Sprintf("cannot place at (%d, %d): cell holds %s", row, col, s.board[row][col]))
	}

	s.board[row][col] = s.selected
	s.selected = NoPiece
}

// Select hands a piece from the pool to the other player. Selecting a piece
// outside the pool, or while another piece is pending, panics.
func (s *State) Select(p Piece) {
	if !s.IsUnused(p) {
		panic(fmt.Sprintf("cannot select %s: not in the pool", p))
	}
	if s.selected != NoPiece {
		panic(fmt.Sprintf("cannot select %s: %s is still pending", p, s.selected))
	}

	s.unused &^= 1 << p
	s.selected = p
	s.turn++
	s.activePlayer ^= 1
}

// Apply plays the placement, then the selection unless the placement ended
// the game. Either half may be nil.
func (s *State) Apply(action Action) {
	if action.Placement != nil {
		s.Place(action.Placement.Row, action.Placement.Col)
	}
	if s.IsDone() {
		return
	}
	if action.Piece != nil {
		s.Select(*action.Piece)
	}
}

// IsDone reports whether a line is complete or nothing is left to place.
func (s *State) IsDone() bool {
	return s.CanWin() || (s.unused == 0 && s.selected == NoPiece)
}

func (s *State) WinningStatus() Status {
	if s.CanWin() {
		return Win
	}
	if s.IsDone() {
		return Draw
	}
	return InProgress
}

// FirstPlayerScore scores a finished game for the player who moved first:
// 1 for a win, 0 for a loss and 0.5 for a draw or an unfinished game. The
// winner is the player who placed the last piece.
func (s *State) FirstPlayerScore() float64 {
	if s.WinningStatus() != Win {
		return 0.5
	}
	if s.IsFirstPlayer() {
		return 1
	}
	return 0
}

func (s State) String() string {
	var sb strings.Builder
	const border = "+------+------+------+------+\n"
	fmt.Fprintf(&sb, "turn: %d\n", s.turn)
	if p, ok := s.Selected(); ok {
		fmt.Fprintf(&sb, "selected piece: %s\n", p)
	}
	fmt.Fprintf(&sb, "unused pieces: %d\t%v\n", s.Unused(), s.LegalPieces())
	for row := range s.board {
		sb.WriteString(border)
		for col := range s.board[row] {
			if p, ok := s.At(row, col); ok {
				fmt.Fprintf(&sb, "| %s ", p)
			} else {
				sb.WriteString("|      ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
