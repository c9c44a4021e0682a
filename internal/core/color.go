package core

// Color is a palette index for a screen cell's foreground. The terminal host
// maps each index to a concrete neon shade; games only pick the index.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorPink
	ColorPurple
	ColorGray

	// Bright variants are used for highlights: titles, overlays, the
	// pentomino shapes.
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	colorCount
)

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
