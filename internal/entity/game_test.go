package entity

import (
	"testing"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// Then: only the waiting predicate holds
		assert.True(t, game.IsWaiting())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: only the ongoing predicate holds
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished covers both terminal states", func(t *testing.T) {
		// Given: a won game and a lost game
		won := &Game{Status: StatusWon}
		lost := &Game{Status: StatusLost}

		// Then: both count as finished
		assert.True(t, won.IsWon())
		assert.True(t, won.IsFinished())
		assert.True(t, lost.IsLost())
		assert.True(t, lost.IsFinished())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		err := game.ConfirmOngoingState()

		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		err := game.ConfirmOngoingState()

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished for terminal states", func(t *testing.T) {
		for _, status := range []string{StatusWon, StatusLost} {
			game := &Game{Status: status}

			err := game.ConfirmOngoingState()

			assert.ErrorIs(t, err, apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_ValidateGuess(t *testing.T) {
	newGameFixture := func() *Game {
		return NewGame("123", DefaultPalette(), DefaultRows, DefaultColumns)
	}

	t.Run("Accepts a full-length guess from the palette", func(t *testing.T) {
		game := newGameFixture()
		guess := []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

		err := game.ValidateGuess(guess)

		assert.NoError(t, err)
	})

	t.Run("Rejects a guess of the wrong length", func(t *testing.T) {
		game := newGameFixture()
		guess := []Color{ColorRed, ColorBlue, ColorGreen}

		err := game.ValidateGuess(guess)

		assert.ErrorIs(t, err, apperror.ErrInvalidGuess)
	})

	t.Run("Rejects a guess with an unknown color", func(t *testing.T) {
		game := newGameFixture()
		guess := []Color{ColorRed, ColorBlue, ColorGreen, Color("magenta")}

		err := game.ValidateGuess(guess)

		assert.ErrorIs(t, err, apperror.ErrInvalidGuess)
	})

	t.Run("Rejects an empty guess", func(t *testing.T) {
		game := newGameFixture()

		err := game.ValidateGuess(nil)

		assert.ErrorIs(t, err, apperror.ErrInvalidGuess)
	})
}

func TestNewGame(t *testing.T) {
	// Given/When: a new game with the classic dimensions
	game := NewGame("42", DefaultPalette(), DefaultRows, DefaultColumns)

	// Then: it waits for its start with an empty board
	assert.Equal(t, "42", game.ID)
	assert.Equal(t, StatusWaiting, game.Status)
	assert.Equal(t, 15, game.Rows)
	assert.Equal(t, 4, game.Columns)
	assert.Nil(t, game.Secret)
	assert.Empty(t, game.History)
}
