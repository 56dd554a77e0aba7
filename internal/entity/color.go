package entity

// Color is a single peg color from the game palette.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorCyan   Color = "cyan"
)

// DefaultPalette returns the classic six-color palette.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorBlue, ColorPink, ColorYellow, ColorGreen, ColorCyan}
}

// PaletteContains reports whether color is part of palette.
func PaletteContains(palette []Color, color Color) bool {
	for _, c := range palette {
		if c == color {
			return true
		}
	}
	return false
}

// ToColors converts raw config strings into Colors.
func ToColors(raw []string) []Color {
	colors := make([]Color, 0, len(raw))
	for _, s := range raw {
		colors = append(colors, Color(s))
	}
	return colors
}
