package game

import "fmt"

type Placement struct {
	Row int
	Col int
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Action is one move: place the pending piece, then hand a piece to the
// opponent. Placement is nil on the first turn and Piece is nil on the last
// turn or when the placement already wins.
type Action struct {
	Placement *Placement
	Piece     *Piece
}

func NewAction(placement *Placement, piece *Piece) Action {
	return Action{Placement: placement, Piece: piece}
}

func (a Action) String() string {
	place, piece := "-", "-"
	if a.Placement != nil {
		place = a.Placement.String()
	}
	if a.Piece != nil {
		piece = a.Piece.String()
	}
	return fmt.Sprintf("place %s select %s", place, piece)
}

// Validate returns an error if the action cannot be applied to the state.
// No selection is required when the placement wins.
func (a Action) Validate(s *State) error {
	if a.Placement == nil {
		if !s.IsFirstTurn() {
			return fmt.Errorf("missing placement on turn %d", s.turn)
		}
	} else {
		row, col := a.Placement.Row, a.Placement.Col
		if _, ok := s.Selected(); !ok {
			return fmt.Errorf("placement %s without a selected piece", a.Placement)
		}
		if row < 0 || row >= Size || col < 0 || col >= Size {
			return fmt.Errorf("placement %s outside the board", a.Placement)
		}
		if _, ok := s.At(row, col); ok {
			return fmt.Errorf("placement %s on an occupied cell", a.Placement)
		}
		if s.CanPlaceThenWin(row, col) {
			return nil
		}
	}

	if a.Piece == nil {
		if s.unused != 0 {
			return fmt.Errorf("missing selection with %d pieces unused", s.Unused())
		}
		return nil
	}
	if !s.IsUnused(*a.Piece) {
		return fmt.Errorf("selection %s is not in the pool", *a.Piece)
	}
	return nil
}
