package agent

import (
	"bufio"
	"fmt"
	"io"
	"quarto/game"

	"github.com/rs/zerolog/log"
)

// Human reads moves from a player. Invalid input is reported and asked
// again; closed input panics since nobody is left to move.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindMove(state *game.State) game.Action {
	fmt.Fprint(h.out, state)

	var place *game.Placement
	if !state.IsFirstTurn() {
		place = h.readPlacement(state)
		if state.IsLastTurn() || state.CanPlaceThenWin(place.Row, place.Col) {
			return game.NewAction(place, nil)
		}
	}
	piece := h.readPiece(state)
	return game.NewAction(place, &piece)
}

func (h *Human) readPlacement(state *game.State) *game.Placement {
	for {
		line := h.prompt("place (row col): ")

		var row, col int
		if _, err := fmt.Sscanf(line, "%d %d", &row, &col); err != nil {
			h.reject("not a placement", line, err)
			continue
		}
		place := game.Placement{Row: row, Col: col}
		for _, legal := range state.LegalPlacements() {
			if legal == place {
				return &place
			}
		}
		h.reject("cell is not empty or outside the board", line, nil)
	}
}

func (h *Human) readPiece(state *game.State) game.Piece {
	for {
		line := h.prompt("select piece (e.g. BSTF): ")

		piece, err := game.ParsePiece(line)
		if err != nil {
			h.reject("not a piece", line, err)
			continue
		}
		if !state.IsUnused(piece) {
			h.reject("piece already used", line, nil)
			continue
		}
		return piece
	}
}

func (h *Human) prompt(message string) string {
	fmt.Fprint(h.out, message)
	if !h.in.Scan() {
		panic(fmt.Sprintf("human input closed: %v", h.in.Err()))
	}
	return h.in.Text()
}

func (h *Human) reject(reason, line string, err error) {
	log.Warn().Err(err).Str("input", line).Msg(reason)
	fmt.Fprintf(h.out, "%s: %q\n", reason, line)
}
