package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payload RequestPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if playerID == player.ID {
		that.logger.Info("Player connected", "playerID", player.ID)
	} else {
		that.logger.Info("Registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payload RequestPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	if payload.Player == nil {
		return that.sendMessage(conn, msg.Action, ResponsePayload{Error: "player is required"})
	}

	player, err := that.playerService.GetPlayerByID(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	gameType := payload.GameType
	if gameType == "" {
		gameType = entity.WithBotType
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, gameType)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{
		Player: player,
		Game:   newGameResponse(game),
	})
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payload RequestPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	if payload.Player == nil {
		return that.sendMessage(conn, msg.Action, ResponsePayload{Error: "player is required"})
	}

	var game *entity.Game
	var err error

	if payload.GameID == "" {
		game, err = that.gamePlayService.JoinWaitingPublicGame(ctx, payload.Player.ID)
	} else {
		game, err = that.gamePlayService.JoinGameByID(ctx, payload.GameID, payload.Player.ID)
	}

	if err != nil {
		that.logger.Error("failed to join game", "playerID", payload.Player.ID, "error", err)
		return that.sendMessage(conn, msg.Action, ResponsePayload{Error: err.Error()})
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{
		Player: payload.Player,
		Game:   newGameResponse(game),
	})
}

func (that *Server) handleTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payload RequestPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	if payload.Player == nil {
		return that.sendMessage(conn, msg.Action, ResponsePayload{Error: "player is required"})
	}

	game, err := that.gamePlayService.MakeTurn(ctx, payload.Player.ID, payload.Row, payload.Col)
	if err != nil {
		that.logger.Error("failed to make turn", "playerID", payload.Player.ID, "error", err)

		response := ResponsePayload{Error: err.Error()}
		if game != nil {
			response.Game = newGameResponse(game)
		}

		return that.sendMessage(conn, msg.Action, response)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{
		Player: payload.Player,
		Game:   newGameResponse(game),
	})
}
