package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

// botService replies for the bot player with the configured search strategy.
type botService struct {
	strategy string
}

func NewBotService(strategy string) BotService {
	return &botService{
		strategy: strategy,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	engine, err := gomoku.NewStrategy(that.strategy, botPlayer.Mark, game.WinLength)
	if err != nil {
		return fmt.Errorf("bot strategy: %w", err)
	}

	if !engine.Move(game.Board) {
		// Search declines to move when every reply is a proven loss. The bot
		// still has to play something, so fall back to a random legal move.
		fallback := gomoku.NewRandom(botPlayer.Mark)
		if !fallback.Move(game.Board) {
			return ErrNoAvailableMoves
		}
	}

	game.Turn = entity.ToggleMark(botPlayer.Mark)
	game.UpdateGameState()

	return nil
}
