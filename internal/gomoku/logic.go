package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// GameLogic drives a human-versus-engine game over a single live board: it
// validates and applies the human move, asks the engine strategy for its
// reply, and reports the outcome exactly once. The human always holds the
// mark opposite to the engine's.
type GameLogic struct {
	board     *entity.Board
	winLength int
	humanMark string
	engine    Strategy
	done      bool
}

func NewGameLogic(board *entity.Board, winLength int, engine Strategy) *GameLogic {
	return &GameLogic{
		board:     board,
		winLength: winLength,
		humanMark: entity.ToggleMark(engine.Mark()),
		engine:    engine,
	}
}

// Board exposes the live board for display. Callers must not mutate it.
func (that *GameLogic) Board() *entity.Board {
	return that.board
}

func (that *GameLogic) HumanMark() string {
	return that.humanMark
}

// Play applies the human move at (row, col) and, while the game is still
// open, the engine's reply. It returns the winning mark or entity.PlayerTie
// once the game ends, and entity.EmptyCell while it continues. A move on an
// occupied cell is rejected without changing any state.
func (that *GameLogic) Play(row, col int) (string, error) {
	if that.done {
		return entity.EmptyCell, apperror.ErrGameFinished
	}

	mark, err := that.board.At(row, col)
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("invalid move: %w", err)
	}

	if mark != entity.EmptyCell {
		return entity.EmptyCell, apperror.ErrCellOccupied
	}

	if err = that.board.Set(row, col, that.humanMark); err != nil {
		return entity.EmptyCell, fmt.Errorf("invalid move: %w", err)
	}

	if outcome := entity.Winner(that.board, that.winLength); outcome != entity.EmptyCell {
		that.done = true
		return outcome, nil
	}

	that.engine.Move(that.board)

	if outcome := entity.Winner(that.board, that.winLength); outcome != entity.EmptyCell {
		that.done = true
		return outcome, nil
	}

	return entity.EmptyCell, nil
}

// Reset clears the board and hands the first move back to the human.
func (that *GameLogic) Reset() {
	that.board.Reset()
	that.done = false
}
