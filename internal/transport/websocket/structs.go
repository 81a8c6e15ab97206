package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Player   *entity.Player `json:"player,omitempty"`
	GameID   string         `json:"game_id,omitempty"`
	GameType string         `json:"game_type,omitempty"`
	Row      int            `json:"row"`
	Col      int            `json:"col"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameResponse  `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type GameResponse struct {
	ID     string        `json:"id"`
	Board  *entity.Board `json:"board"`
	Turn   string        `json:"turn"`
	Winner string        `json:"winner"`
	Status string        `json:"status"`
}

func newGameResponse(game *entity.Game) *GameResponse {
	return &GameResponse{
		ID:     game.ID,
		Board:  game.Board,
		Turn:   game.Turn,
		Winner: game.Winner,
		Status: game.Status,
	}
}
