package mastermind

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/mastermind-backend/internal/cryptorand"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

var (
	ErrEmptyPalette  = errors.New("palette must not be empty")
	ErrInvalidLength = errors.New("code length must be positive")
)

// NewRand returns the default randomness for secret generation.
// Seeded sources are only used by tests that need determinism.
func NewRand() *rand.Rand {
	return rand.New(cryptorand.NewSource()) //nolint: gosec // source is crypto/rand backed
}

// Generate produces a secret code of the given length. Every position is
// picked independently and uniformly from the palette, with replacement,
// so duplicate colors within a code are allowed.
func Generate(rnd *rand.Rand, palette []entity.Color, length int) ([]entity.Color, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	if length < 1 {
		return nil, ErrInvalidLength
	}

	code := make([]entity.Color, length)
	for i := range code {
		code[i] = palette[rnd.Intn(len(palette))]
	}

	return code, nil
}
