package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	palette := DefaultPalette()

	assert.Equal(t, []Color{ColorRed, ColorBlue, ColorPink, ColorYellow, ColorGreen, ColorCyan}, palette)
}

func TestPaletteContains(t *testing.T) {
	palette := DefaultPalette()

	assert.True(t, PaletteContains(palette, ColorPink))
	assert.False(t, PaletteContains(palette, Color("magenta")))
	assert.False(t, PaletteContains(nil, ColorRed))
}

func TestToColors(t *testing.T) {
	colors := ToColors([]string{"red", "cyan"})

	assert.Equal(t, []Color{ColorRed, ColorCyan}, colors)
	assert.Empty(t, ToColors(nil))
}
