package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
	"github.com/rocketscienceinc/mastermind-backend/internal/mastermind"
	"github.com/rocketscienceinc/mastermind-backend/internal/pkg"
	"github.com/rocketscienceinc/mastermind-backend/internal/repository"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager orchestrates single-player code-breaking sessions. A game
// is a single-use session object: starting again always builds a fresh
// game with a new secret instead of resetting fields in place.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo

	palette []entity.Color
	rows    int
	columns int
	rnd     *rand.Rand
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, palette []entity.Color, rows, columns int) *GameManager {
	if len(palette) == 0 {
		palette = entity.DefaultPalette()
	}
	if rows <= 0 {
		rows = entity.DefaultRows
	}
	if columns <= 0 {
		columns = entity.DefaultColumns
	}

	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,

		palette: palette,
		rows:    rows,
		columns: columns,
		rnd:     mastermind.NewRand(),
	}
}

// GetOrCreatePlayer bootstraps a session: an empty id mints a new
// player, a known id returns the stored one.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GenerateNewSessionID()}
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// StartGame builds a fresh game for the player and generates its secret.
// A still-ongoing game blocks the start; a finished or stale one is
// discarded first.
func (that *GameManager) StartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		previous, err := that.gameRepo.GetByID(ctx, player.GameID)
		switch {
		case err == nil && previous.IsOngoing():
			return nil, apperror.ErrGameAlreadyStarted
		case err == nil:
			that.deleteGame(ctx, previous)
		case !errors.Is(err, repository.ErrGameNotFound):
			return nil, fmt.Errorf("failed to get game by id: %w", err)
		}
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	game := entity.NewGame(gameID, that.palette, that.rows, that.columns)
	if err = mastermind.Start(game, that.rnd); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	player.GameID = game.ID
	game.Players = []*entity.Player{player}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// SubmitGuess scores one row for the player's current game. The scored
// game is persisted even on win or loss, so a late guess surfaces the
// finished-game error instead of a lookup failure.
func (that *GameManager) SubmitGuess(ctx context.Context, playerID string, guess []entity.Color) (*entity.Game, entity.Score, error) {
	game, err := that.getGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, entity.Score{}, err
	}

	score, err := mastermind.SubmitGuess(game, guess)
	if err != nil {
		return game, entity.Score{}, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to update game: %w", err)
	}

	return game, score, nil
}

// GetGameByPlayerID resumes the player's in-flight game on reconnect.
func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	return that.getGameByPlayerID(ctx, playerID)
}

// LeaveGame discards the player's session, finished or not.
func (that *GameManager) LeaveGame(ctx context.Context, playerID string) error {
	game, err := that.getGameByPlayerID(ctx, playerID)
	if err != nil {
		return err
	}

	that.deleteGame(ctx, game)

	return nil
}

func (that *GameManager) getGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		player.GameID = ""
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}
