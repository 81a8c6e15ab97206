package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// Terminal scores from the engine's point of view. There is no heuristic
// evaluation for non-terminal positions: every branch is searched down to a
// win, loss, or tie, which is bounded because each ply consumes one empty
// cell.
const (
	scoreLoss = -1
	scoreTie  = 0
	scoreWin  = 1
)

// Engine picks moves by exhaustive game-tree search. The engine's own mark is
// the maximizing side; the opponent minimizes. With pruning enabled the
// search is alpha-beta, which chooses the same move as plain minimax while
// expanding fewer positions.
type Engine struct {
	mark      string
	winLength int
	prune     bool
	expanded  int
}

func NewMinimax(mark string, winLength int) *Engine {
	return &Engine{
		mark:      mark,
		winLength: winLength,
	}
}

func NewAlphaBeta(mark string, winLength int) *Engine {
	return &Engine{
		mark:      mark,
		winLength: winLength,
		prune:     true,
	}
}

func (that *Engine) Mark() string {
	return that.mark
}

// Expanded reports how many positions the last Move expanded.
func (that *Engine) Expanded() int {
	return that.expanded
}

// Move advances the board one ply to the best reply for the engine's mark,
// assuming optimal play by both sides from there on. It reports false and
// leaves the board untouched when there is nothing to play: the position is
// already terminal, or every reply scores no better than a certain loss.
func (that *Engine) Move(board *entity.Board) bool {
	that.expanded = 0

	_, candidates := that.value(board, that.mark, scoreLoss, scoreWin)
	if len(candidates) == 0 {
		return false
	}

	copy(board.Cells, candidates[0].Cells)

	return true
}

// value evaluates the position with mover to play. It returns the position's
// exact score and the successors that strictly improved the running extremum,
// in the order they were found; the list is empty for terminal positions.
// alpha and beta bound what the maximizer and minimizer can already force on
// the path from the root; they are only acted on when pruning is enabled.
func (that *Engine) value(board *entity.Board, mover string, alpha, beta int) (int, []*entity.Board) {
	switch winner := entity.Winner(board, that.winLength); winner {
	case entity.EmptyCell:
		// ongoing, keep searching
	case entity.PlayerTie:
		return scoreTie, nil
	case that.mark:
		return scoreWin, nil
	default:
		return scoreLoss, nil
	}

	if mover == that.mark {
		return that.maximize(board, mover, alpha, beta)
	}

	return that.minimize(board, mover, alpha, beta)
}

func (that *Engine) maximize(board *entity.Board, mover string, alpha, beta int) (int, []*entity.Board) {
	best := scoreLoss
	var candidates []*entity.Board

	for next := range NextBoards(board, mover) {
		that.expanded++

		score, _ := that.value(next, entity.ToggleMark(mover), alpha, beta)
		if score > best {
			best = score
			candidates = append(candidates, next)
		}

		if that.prune {
			if best > alpha {
				alpha = best
			}

			if beta <= alpha {
				break
			}
		}
	}

	return best, candidates
}

func (that *Engine) minimize(board *entity.Board, mover string, alpha, beta int) (int, []*entity.Board) {
	best := scoreWin
	var candidates []*entity.Board

	for next := range NextBoards(board, mover) {
		that.expanded++

		score, _ := that.value(next, entity.ToggleMark(mover), alpha, beta)
		if score < best {
			best = score
			candidates = append(candidates, next)
		}

		if that.prune {
			if best < beta {
				beta = best
			}

			if beta <= alpha {
				break
			}
		}
	}

	return best, candidates
}
