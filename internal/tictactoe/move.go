package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

// maxIndex is the last valid row/column. Coordinates are zero based.
const maxIndex = entity.BoardSide - 1

type Move struct {
	Row uint8
	Col uint8
}

// ParseMove splits a raw "row col" line (space or comma separated) into integers.
func ParseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(fields) != 2 {
		return 0, 0, &apperror.ValidationError{
			Kind:   apperror.MalformedInput,
			Detail: fmt.Sprintf("expected row and column, got %q", strings.TrimSpace(line)),
		}
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, &apperror.ValidationError{Kind: apperror.MalformedInput, Detail: "row is not a number"}
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, &apperror.ValidationError{Kind: apperror.MalformedInput, Detail: "column is not a number"}
	}

	return row, col, nil
}

// ValidateMove - checks the coordinates against the board before a play request is built.
func ValidateMove(board *entity.Board, row, col int) error {
	if row < 0 || row > maxIndex || col < 0 || col > maxIndex {
		return &apperror.ValidationError{
			Kind:   apperror.OutOfBounds,
			Detail: fmt.Sprintf("row %d, column %d: both must be within 0..%d", row, col, maxIndex),
		}
	}

	if board[row][col] != entity.TileEmpty {
		return &apperror.ValidationError{
			Kind:   apperror.TileOccupied,
			Detail: fmt.Sprintf("row %d, column %d holds %s", row, col, board[row][col].Symbol()),
		}
	}

	return nil
}

// ReadMove parses and validates a raw input line.
func ReadMove(board *entity.Board, line string) (Move, error) {
	row, col, err := ParseMove(line)
	if err != nil {
		return Move{}, err
	}

	if err = ValidateMove(board, row, col); err != nil {
		return Move{}, err
	}

	return Move{Row: uint8(row), Col: uint8(col)}, nil
}
