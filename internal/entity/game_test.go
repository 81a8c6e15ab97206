package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new 3-in-a-row game
	game := NewGame("123", PrivateType, 3, 3)

	// Then: the game state should correspond to the expected initial state
	require.Equal(t, "123", game.ID)
	require.Equal(t, NewBoard(3), game.Board)
	require.Equal(t, 3, game.WinLength)
	require.Equal(t, PlayerX, game.Turn)
	require.Equal(t, StatusWaiting, game.Status)
	require.Empty(t, game.Winner)
}

func TestGame_MakeTurn(t *testing.T) {
	newOngoingGame := func() *Game {
		game := NewGame("123", PrivateType, 3, 3)
		game.Status = StatusOngoing
		return game
	}

	t.Run("MakeTurn places the mark and passes the turn", func(t *testing.T) {
		// Given: an ongoing game with X to move
		game := newOngoingGame()

		// When: player X makes a turn
		err := game.MakeTurn(PlayerX, 0, 0)
		require.NoError(t, err)

		// Then: the mark is placed and O is to move
		mark, err := game.Board.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: an ongoing game where X took (0, 0)
		game := newOngoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))

		// When: player O tries the same cell
		err := game.MakeTurn(PlayerO, 0, 0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, game.Turn)

		mark, atErr := game.Board.At(0, 0)
		require.NoError(t, atErr)
		assert.Equal(t, PlayerX, mark)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: an ongoing game with X to move
		game := newOngoingGame()

		// When: player O tries to move first
		err := game.MakeTurn(PlayerO, 0, 1)

		// Then: ErrNotYourTurn is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, NewBoard(3), game.Board)
	})

	t.Run("Error on out-of-bounds cell", func(t *testing.T) {
		// Given: an ongoing game
		game := newOngoingGame()

		// When: a cell outside the grid is played
		err := game.MakeTurn(PlayerX, 7, 0)

		// Then: ErrOutOfBounds is returned
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a finished game
		game := newOngoingGame()
		game.Status = StatusFinished
		game.Winner = PlayerX

		// When: player O tries to move anyway
		err := game.MakeTurn(PlayerO, 1, 1)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X holds two cells of the top row
		game := newOngoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 1, 0))
		require.NoError(t, game.MakeTurn(PlayerX, 0, 1))
		require.NoError(t, game.MakeTurn(PlayerO, 1, 1))

		// When: X completes the row
		require.NoError(t, game.MakeTurn(PlayerX, 0, 2))

		// Then: X wins and the turn is cleared
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Empty(t, game.Turn)
	})

	t.Run("Filling the last cell without a run ties the game", func(t *testing.T) {
		// Given: a board one move away from a tie
		game := newOngoingGame()
		game.Board = boardFromCells(t, 3, []string{
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, EmptyCell,
		})
		game.Turn = PlayerO

		// When: the last cell is filled
		require.NoError(t, game.MakeTurn(PlayerO, 2, 2))

		// Then: the game is a tie
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, StatusFinished, game.Status)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "paused"}
		assert.ErrorIs(t, game.ConfirmOngoingState(), ErrUnknownGameStatus)
	})
}

func TestPlayer_IsBot(t *testing.T) {
	// Given: a bot player and a human player
	bot := NewBotPlayer("game1", PlayerO)
	human := &Player{ID: "abcdef", Mark: PlayerX}

	// Then: only the bot identifies as a bot
	assert.True(t, bot.IsBot())
	assert.False(t, human.IsBot())
	assert.Equal(t, "game1", bot.GameID)
}
