package gomoku

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	StrategyRandom    = "random"
	StrategyMinimax   = "minimax"
	StrategyAlphaBeta = "alpha-beta"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy plays one move for its mark, mutating the board in place. Move
// reports false when no move was made.
type Strategy interface {
	Mark() string
	Move(board *entity.Board) bool
}

// NewStrategy builds a strategy from its configured name.
func NewStrategy(name, mark string, winLength int) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return NewRandom(mark), nil
	case StrategyMinimax:
		return NewMinimax(mark, winLength), nil
	case StrategyAlphaBeta:
		return NewAlphaBeta(mark, winLength), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
