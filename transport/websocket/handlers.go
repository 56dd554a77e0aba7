package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	playerID := ""
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{
		Player: player,
	}

	// A reconnecting player gets their in-flight game back.
	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
		}
		payloadResp.Game = maskGameSecret(game)
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player")

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gameUseCase.StartGame(ctx, payloadReq.Player.ID)
	if errors.Is(err, apperror.ErrGameAlreadyStarted) {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to start a new game")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   maskGameSecret(game),
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("Game started", "gameID", game.ID)

	return nil
}

func (that *Server) handleGuess(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGuess")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	if payloadReq.Guess == nil {
		log.Error("Guess is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Guess is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, score, err := that.gameUseCase.SubmitGuess(ctx, payloadReq.Player.ID, payloadReq.Guess)

	switch {
	case errors.Is(err, apperror.ErrInvalidGuess),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrNoActiveGames):
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to submit guess", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to submit guess")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   maskGameSecret(game),
		Score:  &score,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("Guess scored", "gameID", game.ID, "exact", score.Exact, "color", score.Color, "status", game.Status)

	return nil
}

func (that *Server) handleLeaveGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleLeaveGame")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	if err = that.gameUseCase.LeaveGame(ctx, payloadReq.Player.ID); err != nil {
		log.Error("failed to leave game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "game doesn't exist")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("Player left the game")

	return nil
}

func unmarshalPayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

// maskGameSecret hides the secret code while the game is still being
// played. The code is only revealed on a terminal state.
func maskGameSecret(game *entity.Game) *entity.Game {
	if game.IsFinished() {
		return game
	}

	masked := *game
	masked.Secret = nil

	return &masked
}
