// Package object contains the court entities: paddles, ball, controllers and
// the scoreboard.
package object

import (
	"github.com/tomz197/pingpong/internal/draw"
	"github.com/tomz197/pingpong/internal/input"
	"github.com/tomz197/pingpong/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// PlayerSlot identifies one of the two competing sides.
type PlayerSlot int

const (
	PlayerNone PlayerSlot = iota
	PlayerOne
	PlayerTwo
)

// String returns a short identifier for logs.
func (p PlayerSlot) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return "none"
	}
}

// Name returns the display name of the slot.
func (p PlayerSlot) Name() string {
	switch p {
	case PlayerOne:
		return "Red Player"
	case PlayerTwo:
		return "Blue Player"
	default:
		return ""
	}
}

// Color returns the render color of the slot.
func (p PlayerSlot) Color() draw.Color {
	if p == PlayerOne {
		return draw.ColorRed
	}
	return draw.ColorBlue
}

// BoundsProvider exposes the court's playable area.
type BoundsProvider interface {
	Bounds() physics.Bounds
}

// Court is the read-only view of the table the ball collides against.
type Court interface {
	BoundsProvider
	LeftPaddle() *Paddle
	RightPaddle() *Paddle
}

// Scorer receives a point when the ball leaves the court.
type Scorer interface {
	ScorePoint(slot PlayerSlot)
}

// Rand is a source of uniform values in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
}

// Drawable is an entity that renders itself onto the surface.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// sign returns -1, 0 or +1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
