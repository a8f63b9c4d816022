package game

type line [Size]Placement

// lines lists the 4 rows, 4 columns and 2 diagonals
var lines = func() [2*Size + 2]line {
	var ls [2*Size + 2]line
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			ls[i][j] = Placement{Row: i, Col: j}
			ls[Size+i][j] = Placement{Row: j, Col: i}
		}
		ls[2*Size][i] = Placement{Row: i, Col: i}
		ls[2*Size+1][i] = Placement{Row: i, Col: Size - 1 - i}
	}
	return ls
}()

// CanWin reports whether any line is complete.
func (s *State) CanWin() bool {
	for _, l := range lines {
		if s.isWinningLine(l) {
			return true
		}
	}
	return false
}

// CanPlaceThenWin reports whether placing the selected piece at (row, col)
// would complete a line. The state is left untouched.
func (s *State) CanPlaceThenWin(row, col int) bool {
	if s.selected == NoPiece || s.board[row][col] != NoPiece {
		return false
	}
	next := *s
	next.board[row][col] = next.selected
	return next.CanWin()
}

func (s *State) isWinningLine(l line) bool {
	var pieces [Size]Piece
	for i, cell := range l {
		p := s.board[cell.Row][cell.Col]
		if p == NoPiece {
			return false
		}
		pieces[i] = p
	}
	return haveCommonAttribute(pieces)
}

// haveCommonAttribute reports whether all pieces share a value of at least
// one attribute.
func haveCommonAttribute(pieces [Size]Piece) bool {
	allSet, allClear := Piece(NumPieces-1), Piece(NumPieces-1)
	for _, p := range pieces {
		allSet &= p
		allClear &= ^p
	}
	return (allSet|allClear)&(NumPieces-1) != 0
}
