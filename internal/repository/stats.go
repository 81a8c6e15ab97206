package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type StatsRepository interface {
	RecordWin(ctx context.Context, playerID string) error
	RecordLoss(ctx context.Context, playerID string) error
	RecordDraw(ctx context.Context, playerID string) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsRepository struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (that *statsRepository) RecordWin(ctx context.Context, playerID string) error {
	return that.record(ctx, playerID, "wins")
}

func (that *statsRepository) RecordLoss(ctx context.Context, playerID string) error {
	return that.record(ctx, playerID, "losses")
}

func (that *statsRepository) RecordDraw(ctx context.Context, playerID string) error {
	return that.record(ctx, playerID, "draws")
}

func (that *statsRepository) record(ctx context.Context, playerID, column string) error {
	query := fmt.Sprintf(`INSERT INTO player_stats (player_id, %s) VALUES (?, 1)
		ON CONFLICT(player_id) DO UPDATE SET %s = %s + 1`, column, column, column)

	_, err := that.conn.ExecContext(ctx, query, playerID)
	if err != nil {
		return fmt.Errorf("can't record result for player %s: %w", playerID, err)
	}

	return nil
}

func (that *statsRepository) GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	query := `SELECT player_id, wins, losses, draws FROM player_stats WHERE player_id = ?`

	stats := &entity.PlayerStats{}

	row := that.conn.QueryRowContext(ctx, query, playerID)
	err := row.Scan(&stats.PlayerID, &stats.Wins, &stats.Losses, &stats.Draws)

	if errors.Is(err, sql.ErrNoRows) {
		return &entity.PlayerStats{PlayerID: playerID}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't get stats for player %s: %w", playerID, err)
	}

	return stats, nil
}
