package gomoku

import (
	"iter"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// NextBoards yields one successor per empty cell of the board, each a clone
// with that cell set to mark. Successors come in row-major, ascending order
// so repeated searches over the same position are reproducible, and they are
// produced lazily: a caller that stops early never pays for the remaining
// clones.
func NextBoards(board *entity.Board, mark string) iter.Seq[*entity.Board] {
	return func(yield func(*entity.Board) bool) {
		for _, cell := range board.EmptyCells() {
			next := board.Clone()
			if err := next.Set(cell.Row, cell.Col, mark); err != nil {
				continue
			}

			if !yield(next) {
				return
			}
		}
	}
}
