package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// BoardSize is fixed: the game is defined on a 3x3 grid only.
const BoardSize = 3

// Position is a (row, col) pair on the board, both in {0, 1, 2}.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// WinLines - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid of cells. It validates every mutation but does not
// enforce marker alternation; the caller alternates markers between turns.
// A Board is never shared for concurrent mutation.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoard - creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Cell - returns the cell at the given position.
func (that *Board) Cell(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return CellEmpty, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

// IsLegal - reports whether placing a mark at (row, col) is currently legal.
func (that *Board) IsLegal(row, col int) bool {
	return inBounds(row, col) && that.cells[row][col].IsEmpty() && !that.Outcome().IsTerminal()
}

// Place - marks the cell at (row, col) for the given marker. On failure the
// board is left unchanged.
func (that *Board) Place(row, col int, marker Marker) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	if that.Outcome().IsTerminal() {
		return apperror.ErrGameFinished
	}

	that.cells[row][col] = cellOf(marker)

	return nil
}

// LegalMoves - returns the currently legal positions in row-major order.
// The result is empty once the game is over.
func (that *Board) LegalMoves() []Position {
	if that.Outcome().IsTerminal() {
		return nil
	}

	moves := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.cells[row][col].IsEmpty() {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Outcome - evaluates the 8 winning lines and returns the game status.
// Pure function of the grid.
func (that *Board) Outcome() Outcome {
	for _, line := range WinLines {
		a := that.cells[line[0].Row][line[0].Col]
		b := that.cells[line[1].Row][line[1].Col]
		c := that.cells[line[2].Row][line[2].Col]

		if !a.IsEmpty() && a == b && b == c {
			marker, _ := a.Marker()
			return winFor(marker)
		}
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.cells[row][col].IsEmpty() {
				return OutcomeInProgress
			}
		}
	}

	return OutcomeDraw
}

// Reset - sets every cell back to empty.
func (that *Board) Reset() {
	that.cells = [BoardSize][BoardSize]Cell{}
}

// Clone - returns an independent copy of the board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) String() string {
	var builder strings.Builder

	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(that.cells[row][col].String())
		}
	}

	return builder.String()
}
