package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
)

const (
	StatusWaiting = "waiting"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

const (
	DefaultRows    = 15
	DefaultColumns = 4
)

// Score is the aggregate feedback for one scored row: exact matches
// (right color, right position) and color matches (right color, wrong
// position). Feedback is never positional.
type Score struct {
	Exact int `json:"exact"`
	Color int `json:"color"`
}

// Row is one scored guess. Rows are immutable once appended.
type Row struct {
	Guess []Color `json:"guess"`
	Score Score   `json:"score"`
}

type Game struct {
	ID             string    `json:"id"`
	Secret         []Color   `json:"secret,omitempty"`
	Palette        []Color   `json:"palette"`
	Rows           int       `json:"rows"`
	Columns        int       `json:"columns"`
	CurrentRow     int       `json:"current_row"`
	History        []Row     `json:"history,omitempty"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"started_at,omitempty"`
	Attempts       int       `json:"attempts,omitempty"`
	ElapsedSeconds int       `json:"elapsed_seconds,omitempty"`
	Players        []*Player `json:"players,omitempty"`
}

func NewGame(id string, palette []Color, rows, columns int) *Game {
	return &Game{
		ID:      id,
		Palette: palette,
		Rows:    rows,
		Columns: columns,
		Status:  StatusWaiting,
	}
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsLost() bool {
	return that.Status == StatusLost
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsLost()
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
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}

// ValidateGuess rejects a guess that is not fully specified or contains
// a color outside the palette. Checked before any scoring happens.
func (that *Game) ValidateGuess(guess []Color) error {
	if len(guess) != that.Columns {
		return fmt.Errorf("%w: expected %d colors, got %d", apperror.ErrInvalidGuess, that.Columns, len(guess))
	}

	for _, color := range guess {
		if !PaletteContains(that.Palette, color) {
			return fmt.Errorf("%w: unknown color %q", apperror.ErrInvalidGuess, color)
		}
	}

	return nil
}
