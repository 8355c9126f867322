package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// circleSegments is the polygon resolution used for FillCircle.
const circleSegments = 16

// cell is what one terminal character shows: two stacked sub-pixels.
type cell struct {
	top, bottom Color
}

// sequence returns the characters that draw the cell, colors included.
func (cl cell) sequence() string {
	switch {
	case cl.top == ColorNone && cl.bottom == ColorNone:
		return " "
	case cl.top == cl.bottom:
		return cl.top.Foreground() + string(BlockFull) + ColorReset
	case cl.bottom == ColorNone:
		return cl.top.Foreground() + string(BlockUpperHalf) + ColorReset
	case cl.top == ColorNone:
		return cl.bottom.Foreground() + string(BlockLowerHalf) + ColorReset
	default:
		return cl.top.Foreground() + cl.bottom.Background() + string(BlockUpperHalf) + ColorReset
	}
}

// textOverlay is text queued for output on top of the pixels.
type textOverlay struct {
	col, row int // 1-based canvas position
	text     string
	size     FontSize
	color    Color
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Only cells that changed since the previous Render are written.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Last rendered frame, for diffing
	cells []cell
	dirty []bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	offsetCol int
	offsetRow int

	texts  []textOverlay
	styler *TextStyler

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// Ensure Canvas satisfies Surface.
var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		styler:        NewTextStyler(),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.cells = make([]cell, termHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// Clear resets all pixels and queued text.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.texts = c.texts[:0]
}

// Width returns the logical width.
func (c *Canvas) Width() float64 {
	return c.logicalWidth
}

// Height returns the logical height.
func (c *Canvas) Height() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count used for rendering.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count used for rendering.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// PixelAt returns the color of a sub-pixel (0-based terminal coordinates).
func (c *Canvas) PixelAt(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// Every rectangle with a positive size covers at least one pixel.
func (c *Canvas) FillRect(x, y, width, height float64, col Color) {
	if width <= 0 || height <= 0 {
		return
	}

	x0 := int(math.Round(x * c.scaleX))
	x1 := int(math.Round((x + width) * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	y1 := int(math.Round((y + height) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillCircle fills a circle given in logical coordinates.
func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}

	points := c.BorrowPoints(circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Point{
			X: cx + math.Cos(angle)*radius,
			Y: cy + math.Sin(angle)*radius,
		}
	}
	c.DrawPolygon(points, true, col)
}

// DrawText queues text for output after the pixels, with its baseline at y.
func (c *Canvas) DrawText(x, y float64, text string, size FontSize, col Color) {
	if text == "" {
		return
	}
	tc, tr := c.LogicalToTerminal(x, y)
	c.texts = append(c.texts, textOverlay{col: tc, row: tr, text: text, size: size, color: col})
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool, col Color) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	// Outline keeps small shapes visible at low resolution
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// cellAt combines the two sub-pixels of a terminal cell (0-based).
func (c *Canvas) cellAt(col, row int) cell {
	return cell{
		top:    c.PixelAt(col, row*2),
		bottom: c.PixelAt(col, row*2+1),
	}
}

// moveCursor appends a cursor position sequence for a 0-based canvas cell.
func (c *Canvas) moveCursor(col, row int) {
	fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
}

// Render writes the cells that changed since the previous Render, then the
// queued text. Cells covered by text are redrawn on the next Render.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			cl := c.cellAt(col, row)
			if cl == c.cells[idx] && !c.dirty[idx] {
				continue
			}
			c.cells[idx] = cl
			c.dirty[idx] = false

			c.moveCursor(col, row)
			c.renderBuf.WriteString(cl.sequence())
		}
	}

	for _, t := range c.texts {
		c.renderText(t)
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// renderText clips a text overlay to the canvas and writes it with the
// background of the cell it starts on.
func (c *Canvas) renderText(t textOverlay) {
	row := t.row - 1
	col := t.col - 1
	if row < 0 || row >= c.termHeight || col >= c.termWidth {
		return
	}
	text := t.text
	if col < 0 {
		if -col >= len(text) {
			return
		}
		text = text[-col:]
		col = 0
	}
	if col+len(text) > c.termWidth {
		text = text[:c.termWidth-col]
	}

	bg := c.cellAt(col, row).top
	c.moveCursor(col, row)
	c.renderBuf.WriteString(c.styler.Render(text, t.size, t.color, bg))

	for i := 0; i < len(text); i++ {
		c.dirty[row*c.termWidth+col+i] = true
	}
}

// LogicalToTerminal converts logical coordinates to the 1-based canvas
// position (col, row) of the cell containing them.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal position, as reported by the
// terminal for mouse events, to the logical coordinates of the cell center.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	pc := col - 1 - c.offsetCol
	pr := row - 1 - c.offsetRow
	x = (float64(pc) + 0.5) / c.scaleX
	y = (float64(pr*2) + 1) / c.scaleY
	return x, y
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
