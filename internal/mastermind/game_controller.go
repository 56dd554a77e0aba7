// Package mastermind owns the code-breaking rules: secret generation,
// guess evaluation and the turn state machine. It operates on
// entity.Game and performs no I/O; persistence and transports live in
// the layers above.
package mastermind

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

// Start generates a fresh secret code, opens row zero and records the
// start time. A game is started exactly once; restarting means building
// a new game instance.
func Start(game *entity.Game, rnd *rand.Rand) error {
	if !game.IsWaiting() {
		return apperror.ErrGameAlreadyStarted
	}

	secret, err := Generate(rnd, game.Palette, game.Columns)
	if err != nil {
		return fmt.Errorf("failed to generate secret code: %w", err)
	}

	game.Secret = secret
	game.CurrentRow = 0
	game.StartedAt = time.Now()
	game.Status = entity.StatusOngoing

	return nil
}

// SubmitGuess validates a guess, scores it and advances the turn state.
// An invalid guess is rejected before scoring and leaves the game
// untouched; rows are only ever consumed by valid submissions.
func SubmitGuess(game *entity.Game, guess []entity.Color) (entity.Score, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Score{}, err
	}

	if err := game.ValidateGuess(guess); err != nil {
		return entity.Score{}, err
	}

	score := EvaluateGuess(game.Secret, guess)

	row := entity.Row{
		Guess: append([]entity.Color(nil), guess...),
		Score: score,
	}
	game.History = append(game.History, row)

	switch {
	case score.Exact == game.Columns:
		game.Status = entity.StatusWon
		game.Attempts = game.CurrentRow + 1
		game.ElapsedSeconds = int(time.Since(game.StartedAt).Seconds())
	case game.CurrentRow == game.Rows-1:
		game.Status = entity.StatusLost
	default:
		game.CurrentRow++
	}

	return score, nil
}
