package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID        string    `json:"id"`
	Board     *Board    `json:"board"`
	WinLength int       `json:"win_length"`
	Winner    string    `json:"winner"`
	Status    string    `json:"status"`
	Turn      string    `json:"player_turn"`
	Players   []*Player `json:"players,omitempty"`
	Type      string    `json:"type,omitempty"`
}

func NewGame(id, gameType string, size, winLength int) *Game {
	return &Game{
		ID:        id,
		Board:     NewBoard(size),
		WinLength: winLength,
		Turn:      PlayerX,
		Status:    StatusWaiting,
		Type:      gameType,
	}
}

func (that *Game) DetermineGameResult() string {
	return Winner(that.Board, that.WinLength)
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	mark, err := that.Board.At(row, col)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if mark != EmptyCell {
		return apperror.ErrCellOccupied
	}

	if err = that.Board.Set(row, col, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = ToggleMark(playerMark)
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
