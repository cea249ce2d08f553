package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect4-rules/internal/domain"
)

func cellSymbol(cell domain.CellState) string {
	switch cell {
	case domain.Red:
		return "| @ "
	case domain.Black:
		return "| O "
	default:
		return "|   "
	}
}

// Render prints the board top row first with the column numbers underneath
func Render(w io.Writer, b *domain.Board) {
	var sb strings.Builder
	for _, row := range b.Rows() {
		for _, cell := range row {
			sb.WriteString(cellSymbol(cell))
		}
		sb.WriteString("|\n")
	}

	for c := 1; c <= domain.Width; c++ {
		fmt.Fprintf(&sb, "  %d ", c)
	}
	sb.WriteString("\n")

	io.WriteString(w, sb.String())
}
