package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// Then: the game is in progress and all 9 cells are playable
	require.Equal(t, OutcomeInProgress, board.Outcome())
	require.Len(t, board.LegalMoves(), 9)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell, err := board.Cell(row, col)
			require.NoError(t, err)
			require.True(t, cell.IsEmpty())
		}
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Place", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()

		// When: X marks the top-left cell
		err := board.Place(0, 0, MarkerX)
		require.NoError(t, err)

		// Then: the cell holds X and the remaining moves shrink by one
		cell, err := board.Cell(0, 0)
		require.NoError(t, err)
		require.Equal(t, CellX, cell)
		require.Len(t, board.LegalMoves(), 8)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X took the top-left cell
		board := NewBoard()
		require.NoError(t, board.Place(0, 0, MarkerX))

		// When: O tries to mark the same cell
		err := board.Place(0, 0, MarkerO)

		// Then: an ErrCellOccupied error must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the cell still belongs to X
		cell, cellErr := board.Cell(0, 0)
		require.NoError(t, cellErr)
		require.Equal(t, CellX, cell)
	})

	t.Run("Out of bounds row", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()

		// When: the row index is outside the grid
		err := board.Place(3, 0, MarkerX)

		// Then: an ErrOutOfBounds error must be returned
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Out of bounds negative col", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()

		// When: the column index is negative
		err := board.Place(0, -1, MarkerX)

		// Then: an ErrOutOfBounds error must be returned
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a board where X has completed the top row
		board := boardFromMoves(t,
			move{0, 0, MarkerX}, move{1, 0, MarkerO},
			move{0, 1, MarkerX}, move{1, 1, MarkerO},
			move{0, 2, MarkerX},
		)
		require.Equal(t, OutcomeXWin, board.Outcome())

		// When: O tries to move after the game is over
		err := board.Place(2, 2, MarkerO)

		// Then: an ErrGameFinished error must be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)

		// Then: the target cell stays empty
		cell, cellErr := board.Cell(2, 2)
		require.NoError(t, cellErr)
		require.True(t, cell.IsEmpty())
	})

	t.Run("Counts every successful placement", func(t *testing.T) {
		// Given: a sequence of alternating moves
		board := boardFromMoves(t,
			move{1, 1, MarkerX}, move{0, 0, MarkerO},
			move{2, 2, MarkerX}, move{0, 2, MarkerO},
		)

		// Then: the number of occupied cells equals the number of placements
		occupied := 0
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				cell, err := board.Cell(row, col)
				require.NoError(t, err)
				if !cell.IsEmpty() {
					occupied++
				}
			}
		}

		require.Equal(t, 4, occupied)
	})
}

func TestBoard_Cell(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// When: the position is outside the grid
	_, err := board.Cell(0, 3)

	// Then: an ErrOutOfBounds error must be returned
	assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
}

func TestBoard_IsLegal(t *testing.T) {
	// Given: a board with one occupied cell
	board := NewBoard()
	require.NoError(t, board.Place(1, 1, MarkerX))

	// Then: empty in-bounds cells are legal, everything else is not
	assert.True(t, board.IsLegal(0, 0))
	assert.False(t, board.IsLegal(1, 1))
	assert.False(t, board.IsLegal(3, 0))
	assert.False(t, board.IsLegal(-1, 2))
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		// Given: a board with two occupied cells
		board := boardFromMoves(t, move{0, 1, MarkerX}, move{1, 1, MarkerO})

		// When: enumerating the legal moves
		moves := board.LegalMoves()

		// Then: the moves come back in row-major scan order
		expected := []Position{
			{0, 0}, {0, 2},
			{1, 0}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, expected, moves)
	})

	t.Run("Empty once the game is over", func(t *testing.T) {
		// Given: a board where X has completed the left column
		board := boardFromMoves(t,
			move{0, 0, MarkerX}, move{0, 1, MarkerO},
			move{1, 0, MarkerX}, move{1, 1, MarkerO},
			move{2, 0, MarkerX},
		)

		// Then: no legal moves remain even though cells are empty
		require.Equal(t, OutcomeXWin, board.Outcome())
		require.Empty(t, board.LegalMoves())
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Win by row", func(t *testing.T) {
		board := boardFromMoves(t,
			move{0, 0, MarkerX}, move{1, 0, MarkerO},
			move{0, 1, MarkerX}, move{1, 1, MarkerO},
			move{0, 2, MarkerX},
		)

		outcome := board.Outcome()
		require.Equal(t, OutcomeXWin, outcome)

		winner, ok := outcome.Winner()
		require.True(t, ok)
		require.Equal(t, MarkerX, winner)
	})

	t.Run("Win by column", func(t *testing.T) {
		board := boardFromMoves(t,
			move{0, 1, MarkerX}, move{0, 0, MarkerO},
			move{1, 1, MarkerX}, move{1, 0, MarkerO},
			move{0, 2, MarkerX}, move{2, 0, MarkerO},
		)

		require.Equal(t, OutcomeOWin, board.Outcome())
	})

	t.Run("Win by diagonal", func(t *testing.T) {
		board := boardFromMoves(t,
			move{0, 0, MarkerX}, move{0, 1, MarkerO},
			move{1, 1, MarkerX}, move{0, 2, MarkerO},
			move{2, 2, MarkerX},
		)

		require.Equal(t, OutcomeXWin, board.Outcome())
	})

	t.Run("Win by anti-diagonal", func(t *testing.T) {
		board := boardFromMoves(t,
			move{0, 2, MarkerX}, move{0, 1, MarkerO},
			move{1, 1, MarkerX}, move{0, 0, MarkerO},
			move{2, 0, MarkerX},
		)

		require.Equal(t, OutcomeXWin, board.Outcome())
	})

	t.Run("Draw", func(t *testing.T) {
		// X O X
		// X O O
		// O X X
		board := boardFromMoves(t,
			move{0, 0, MarkerX}, move{0, 1, MarkerO},
			move{0, 2, MarkerX}, move{1, 1, MarkerO},
			move{1, 0, MarkerX}, move{1, 2, MarkerO},
			move{2, 1, MarkerX}, move{2, 0, MarkerO},
			move{2, 2, MarkerX},
		)

		outcome := board.Outcome()
		require.Equal(t, OutcomeDraw, outcome)
		require.True(t, outcome.IsTerminal())

		_, ok := outcome.Winner()
		require.False(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		// Given: a mid-game board
		board := boardFromMoves(t, move{1, 1, MarkerX}, move{0, 0, MarkerO})

		// When: evaluating the outcome twice without mutation
		first := board.Outcome()
		second := board.Outcome()

		// Then: the results are identical and the grid is untouched
		require.Equal(t, first, second)
		require.Len(t, board.LegalMoves(), 7)
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with a few marks
	board := boardFromMoves(t, move{0, 0, MarkerX}, move{1, 1, MarkerO})

	// When: resetting the board
	board.Reset()

	// Then: every cell is empty again
	require.Equal(t, OutcomeInProgress, board.Outcome())
	require.Len(t, board.LegalMoves(), 9)
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one mark and its clone
	board := NewBoard()
	require.NoError(t, board.Place(0, 0, MarkerX))
	clone := board.Clone()

	// When: mutating the clone
	require.NoError(t, clone.Place(1, 1, MarkerO))

	// Then: the original board is unaffected
	cell, err := board.Cell(1, 1)
	require.NoError(t, err)
	require.True(t, cell.IsEmpty())

	cloned, err := clone.Cell(1, 1)
	require.NoError(t, err)
	require.Equal(t, CellO, cloned)
}

func TestBoard_String(t *testing.T) {
	// Given: a board with one mark per player
	board := boardFromMoves(t, move{0, 0, MarkerX}, move{1, 1, MarkerO})

	// Then: the rendering shows marks and empty cells
	require.Equal(t, "X . .\n. O .\n. . .", board.String())
}

type move struct {
	row, col int
	marker   Marker
}

func boardFromMoves(t *testing.T, moves ...move) *Board {
	t.Helper()

	board := NewBoard()
	for _, m := range moves {
		require.NoError(t, board.Place(m.row, m.col, m.marker))
	}

	return board
}
