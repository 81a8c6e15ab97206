package gomoku

import (
	"math/rand"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Random plays a uniformly random legal move.
type Random struct {
	mark string
}

func NewRandom(mark string) *Random {
	return &Random{mark: mark}
}

func (that *Random) Mark() string {
	return that.mark
}

func (that *Random) Move(board *entity.Board) bool {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return false
	}

	cell := cells[rand.Intn(len(cells))] //nolint: gosec // it's ok

	if err := board.Set(cell.Row, cell.Col, that.mark); err != nil {
		return false
	}

	return true
}
