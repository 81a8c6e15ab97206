package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type StatsService interface {
	RecordResult(ctx context.Context, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsRepo interface {
	RecordWin(ctx context.Context, playerID string) error
	RecordLoss(ctx context.Context, playerID string) error
	RecordDraw(ctx context.Context, playerID string) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// RecordResult tallies a finished game for every human player in it. Bots
// keep no stats.
func (that *statsService) RecordResult(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return nil
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		var err error
		switch game.Winner {
		case entity.PlayerTie:
			err = that.statsRepo.RecordDraw(ctx, player.ID)
		case player.Mark:
			err = that.statsRepo.RecordWin(ctx, player.ID)
		default:
			err = that.statsRepo.RecordLoss(ctx, player.ID)
		}

		if err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	return nil
}

func (that *statsService) GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	stats, err := that.statsRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
