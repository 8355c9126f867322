// Package physics provides axis-aligned collision geometry for the court.
package physics

// Rectangle is an axis-aligned box in logical pixels.
// X, Y is the top-left corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle creates a rectangle, clamping negative sizes to zero.
func NewRectangle(x, y, width, height float64) Rectangle {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x coordinate of the left edge.
func (r Rectangle) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rectangle) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical center.
func (r Rectangle) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps reports whether the two rectangles strictly intersect on both axes.
// Rectangles that only share an edge do not overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return other.Left() < r.Right() &&
		r.Left() < other.Right() &&
		other.Top() < r.Bottom() &&
		r.Top() < other.Bottom()
}

// Contains reports whether the point lies strictly inside all four edges.
func (r Rectangle) Contains(x, y float64) bool {
	return r.Left() < x && r.Right() > x && r.Top() < y && r.Bottom() > y
}

// Bounds is the playable area of the court.
// Upper and Lower are the inner faces of the two walls.
type Bounds struct {
	Upper float64
	Lower float64
	Left  float64
	Right float64
}

// ClampY clamps the top of a box of the given height so the box stays
// between Upper and Lower.
func (b Bounds) ClampY(y, height float64) float64 {
	if y+height > b.Lower {
		y = b.Lower - height
	}
	if y < b.Upper {
		y = b.Upper
	}
	return y
}
