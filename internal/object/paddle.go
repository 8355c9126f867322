package object

import (
	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/physics"
)

// Paddle moves vertically at a fixed horizontal position.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Pixels per second
	Slot          PlayerSlot

	startX, startY float64
	bounds         BoundsProvider
}

// NewPaddle creates a paddle at (x, y). Reset returns it there.
func NewPaddle(settings config.Settings, x, y float64, slot PlayerSlot, bounds BoundsProvider) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  settings.PaddleWidth,
		Height: settings.PaddleHeight,
		Speed:  settings.PaddleSpeed,
		Slot:   slot,
		startX: x,
		startY: y,
		bounds: bounds,
	}
}

// MoveUp moves the paddle up by Speed*dt, stopping at the upper wall.
func (p *Paddle) MoveUp(dt float64) {
	p.Y -= p.Speed * dt
	p.clamp()
}

// MoveDown moves the paddle down by Speed*dt, stopping at the lower wall.
func (p *Paddle) MoveDown(dt float64) {
	p.Y += p.Speed * dt
	p.clamp()
}

func (p *Paddle) clamp() {
	p.Y = p.bounds.Bounds().ClampY(p.Y, p.Height)
}

// Reset restores the construction-time position.
func (p *Paddle) Reset() {
	p.X = p.startX
	p.Y = p.startY
}

// CollisionBox returns the paddle's rectangle.
func (p *Paddle) CollisionBox() physics.Rectangle {
	return physics.NewRectangle(p.X, p.Y, p.Width, p.Height)
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Draw renders the paddle in its player's color.
func (p *Paddle) Draw(ctx DrawContext) error {
	ctx.Surface.FillRect(p.X, p.Y, p.Width, p.Height, p.Slot.Color())
	return nil
}
