package apperror

import "errors"

var (
	ErrInvalidGuess       = errors.New("invalid guess")
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrNoActiveGames      = errors.New("no active games")
	ErrNotFound           = errors.New("not found")
)
