package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromCells(t *testing.T, size int, cells []string) *Board {
	t.Helper()
	require.Len(t, cells, size*size)

	board := NewBoard(size)
	copy(board.Cells, cells)

	return board
}

func TestWinner_Rows(t *testing.T) {
	t.Run("Full row wins even when the board is not full", func(t *testing.T) {
		// Given: a row of three X marks on an otherwise sparse board
		board := boardFromCells(t, 3, []string{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, PlayerO, EmptyCell,
		})

		// When: the board is classified
		winner := Winner(board, 3)

		// Then: X is the winner
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Run longer than the winning length still wins", func(t *testing.T) {
		// Given: four O marks in a row with win length three
		board := NewBoard(5)
		for col := 1; col < 5; col++ {
			require.NoError(t, board.Set(2, col, PlayerO))
		}

		// When: the board is classified
		winner := Winner(board, 3)

		// Then: O is the winner
		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Non-consecutive marks do not win", func(t *testing.T) {
		// Given: three X marks in a row interrupted by an O
		board := boardFromCells(t, 4, []string{
			PlayerX, PlayerX, PlayerO, PlayerX,
			EmptyCell, EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell, EmptyCell,
		})

		// When: the board is classified
		winner := Winner(board, 3)

		// Then: the game is still ongoing
		assert.Equal(t, EmptyCell, winner)
	})
}

func TestWinner_Columns(t *testing.T) {
	// Given: a column of three O marks
	board := NewBoard(3)
	for row := 0; row < 3; row++ {
		require.NoError(t, board.Set(row, 1, PlayerO))
	}

	// When: the board is classified
	winner := Winner(board, 3)

	// Then: O is the winner
	assert.Equal(t, PlayerO, winner)
}

func TestWinner_Diagonals(t *testing.T) {
	t.Run("Main diagonal", func(t *testing.T) {
		// Given: X on the main diagonal
		board := NewBoard(3)
		for i := 0; i < 3; i++ {
			require.NoError(t, board.Set(i, i, PlayerX))
		}

		winner := Winner(board, 3)

		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Anti-diagonal", func(t *testing.T) {
		// Given: O on the anti-diagonal
		board := NewBoard(3)
		for i := 0; i < 3; i++ {
			require.NoError(t, board.Set(i, 2-i, PlayerO))
		}

		winner := Winner(board, 3)

		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Off-center diagonal on a larger board", func(t *testing.T) {
		// Given: a 5x5 board with a three-long run on a diagonal that does
		// not pass through a corner
		board := NewBoard(5)
		require.NoError(t, board.Set(0, 1, PlayerX))
		require.NoError(t, board.Set(1, 2, PlayerX))
		require.NoError(t, board.Set(2, 3, PlayerX))

		winner := Winner(board, 3)

		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Off-center anti-diagonal on a larger board", func(t *testing.T) {
		// Given: a 5x5 board with a three-long run rising to the right,
		// away from the central anti-diagonal
		board := NewBoard(5)
		require.NoError(t, board.Set(4, 2, PlayerO))
		require.NoError(t, board.Set(3, 3, PlayerO))
		require.NoError(t, board.Set(2, 4, PlayerO))

		winner := Winner(board, 3)

		assert.Equal(t, PlayerO, winner)
	})
}

func TestWinner_DrawAndOngoing(t *testing.T) {
	t.Run("Full board with no run is a tie", func(t *testing.T) {
		// Given: a full board with no winning run
		board := boardFromCells(t, 3, []string{
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
		})

		winner := Winner(board, 3)

		assert.Equal(t, PlayerTie, winner)
	})

	t.Run("Full board with a run reports the win, never a tie", func(t *testing.T) {
		// Given: a full board whose last move completed a column for X
		board := boardFromCells(t, 3, []string{
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerX, PlayerO,
		})

		winner := Winner(board, 3)

		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Empty board is ongoing", func(t *testing.T) {
		board := NewBoard(3)

		winner := Winner(board, 3)

		assert.Equal(t, EmptyCell, winner)
	})
}

func TestWinner_DoesNotMutateBoard(t *testing.T) {
	// Given: a mid-game board
	board := boardFromCells(t, 3, []string{
		PlayerX, PlayerO, EmptyCell,
		EmptyCell, PlayerX, EmptyCell,
		EmptyCell, EmptyCell, PlayerO,
	})
	snapshot := board.Clone()

	// When: the board is classified repeatedly
	for i := 0; i < 3; i++ {
		_ = Winner(board, 3)
	}

	// Then: the board is byte-for-byte unchanged
	require.Equal(t, snapshot, board)
}

func TestWinner_LongerWinLength(t *testing.T) {
	// Given: a 4x4 board where X has only three in a row under win length 4
	board := NewBoard(4)
	for col := 0; col < 3; col++ {
		require.NoError(t, board.Set(0, col, PlayerX))
	}

	// When: the board is classified with win length 4
	winner := Winner(board, 4)

	// Then: the game is still ongoing
	assert.Equal(t, EmptyCell, winner)
}
