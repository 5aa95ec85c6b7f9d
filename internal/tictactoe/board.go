package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

// RenderBoard draws the board with row and column indexes.
func RenderBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString("    0   1   2\n")
	for row := range board {
		sb.WriteString(string(rune('0' + row)))
		sb.WriteString("  ")
		for col, tile := range board[row] {
			sb.WriteString(" " + tile.Symbol() + " ")
			if col < entity.BoardSide-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if row < entity.BoardSide-1 {
			sb.WriteString("   ---+---+---\n")
		}
	}

	return sb.String()
}
