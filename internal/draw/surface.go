// Package draw renders the court onto a terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// FontSize is a nominal text size in logical pixels.
// Terminals cannot scale glyphs, so large text is rendered bold.
type FontSize int

const (
	FontSmall FontSize = 16
	FontLarge FontSize = 20
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Surface is the drawing target for a frame. Coordinates are logical pixels.
type Surface interface {
	Clear()
	FillRect(x, y, width, height float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	// DrawText draws text with its baseline at y, starting at x.
	DrawText(x, y float64, text string, size FontSize, c Color)
	Width() float64
	Height() float64
}
