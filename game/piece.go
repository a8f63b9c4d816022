package game

import (
	"errors"
	"fmt"
)

// Attribute indexes one of the four binary piece attributes. The bit of a
// Piece at position Attribute holds that attribute's value.
type Attribute int

const (
	Color Attribute = iota
	Shape
	Height
	Top
)

const NumAttributes = 4

// NumPieces is the number of distinct pieces in a set
const NumPieces = 1 << NumAttributes

// Piece is one of the 16 Quarto pieces. Bit i (see Attribute) is 0 for the
// first letter of the attribute's alphabet and 1 for the second.
type Piece uint8

// NoPiece marks an empty cell or a missing selection
const NoPiece Piece = 0xFF

// alphabets lists the text symbols of each attribute in bit order
var alphabets = [NumAttributes][2]byte{
	Color:  {'B', 'W'}, // black, white
	Shape:  {'S', 'C'}, // square, circle
	Height: {'T', 'S'}, // tall, short
	Top:    {'F', 'H'}, // flat, hole
}

var ErrInvalidPiece = errors.New("invalid piece")

// AllPieces returns the full set in ascending order.
func AllPieces() []Piece {
	pieces := make([]Piece, NumPieces)
	for i := range pieces {
		pieces[i] = Piece(i)
	}
	return pieces
}

func (p Piece) IsValid() bool {
	return p < NumPieces
}

// Value returns the bit of the given attribute.
func (p Piece) Value(a Attribute) uint8 {
	return uint8(p>>a) & 1
}

// String renders the 4-character code, e.g. "BSTF".
func (p Piece) String() string {
	if !p.IsValid() {
		return "----"
	}
	code := make([]byte, NumAttributes)
	for a := Color; a <= Top; a++ {
		code[a] = alphabets[a][p.Value(a)]
	}
	return string(code)
}

// ParsePiece parses the 4-character code produced by String.
func ParsePiece(code string) (Piece, error) {
	if len(code) != NumAttributes {
		return NoPiece, fmt.Errorf("%w: %q must have %d characters", ErrInvalidPiece, code, NumAttributes)
	}

	var p Piece
	for a := Color; a <= Top; a++ {
		switch code[a] {
		case alphabets[a][0]:
		case alphabets[a][1]:
			p |= 1 << a
		default:
			return NoPiece, fmt.Errorf("%w: %q has %q at position %d, want %c or %c",
				ErrInvalidPiece, code, code[a], a, alphabets[a][0], alphabets[a][1])
		}
	}
	return p, nil
}
