package object

import (
	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/draw"
	"github.com/tomz197/pingpong/internal/physics"
)

// Velocity holds the direction of travel per axis. Only the sign of each
// component counts; magnitude comes from the ball's speed.
type Velocity struct {
	X, Y int
}

// Ball bounces between the walls and paddles, accelerating over time.
type Ball struct {
	X, Y     float64 // Center
	Radius   float64
	Velocity Velocity

	speed        float64
	minSpeed     float64
	maxSpeed     float64
	acceleration float64 // Pixels per second²

	court  Court
	scorer Scorer
}

// NewBall creates a ball at (x, y) at rest with minimum speed.
func NewBall(settings config.Settings, x, y float64, court Court, scorer Scorer) *Ball {
	return &Ball{
		X:            x,
		Y:            y,
		Radius:       settings.BallRadius,
		speed:        settings.BallMinSpeed,
		minSpeed:     settings.BallMinSpeed,
		maxSpeed:     settings.BallMaxSpeed,
		acceleration: settings.BallAcceleration,
		court:        court,
		scorer:       scorer,
	}
}

// Speed returns the current scalar speed.
func (b *Ball) Speed() float64 {
	return b.speed
}

// SetSpeed sets the speed, clamped to [minSpeed, maxSpeed].
func (b *Ball) SetSpeed(v float64) {
	if v < b.minSpeed {
		v = b.minSpeed
	} else if v > b.maxSpeed {
		v = b.maxSpeed
	}
	b.speed = v
}

// NormalizedSpeed maps the speed range onto [0, 1].
func (b *Ball) NormalizedSpeed() float64 {
	if b.maxSpeed == b.minSpeed {
		return 0
	}
	return (b.speed - b.minSpeed) / (b.maxSpeed - b.minSpeed)
}

// CollisionBox returns the square bounding the ball.
func (b *Ball) CollisionBox() physics.Rectangle {
	return physics.NewRectangle(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// Update advances the ball by dt seconds. The order is fixed: vertical move
// and wall reflection, left paddle, right paddle, horizontal move, scoring,
// acceleration. A scored point ends the update; the scorer respawns the ball.
func (b *Ball) Update(dt float64) {
	bounds := b.court.Bounds()

	b.Y += float64(sign(float64(b.Velocity.Y))) * b.speed * dt

	if b.Y-b.Radius < bounds.Upper {
		b.Y = bounds.Upper + b.Radius
		b.Velocity.Y = -b.Velocity.Y
	} else if b.Y+b.Radius > bounds.Lower {
		b.Y = bounds.Lower - b.Radius
		b.Velocity.Y = -b.Velocity.Y
	}

	if left := b.court.LeftPaddle().CollisionBox(); b.CollisionBox().Overlaps(left) {
		b.Velocity.X = -b.Velocity.X
		b.X = left.Right() + b.Radius
	}

	if right := b.court.RightPaddle().CollisionBox(); b.CollisionBox().Overlaps(right) {
		b.Velocity.X = -b.Velocity.X
		b.X = right.Left() - b.Radius
	}

	b.X += float64(sign(float64(b.Velocity.X))) * b.speed * dt

	// Exiting on the left gives the point to the right-hand player
	if b.X < bounds.Left {
		b.scorer.ScorePoint(PlayerTwo)
		return
	} else if b.X > bounds.Right {
		b.scorer.ScorePoint(PlayerOne)
		return
	}

	b.SetSpeed(b.speed + b.acceleration*dt)
}

// Respawn places the ball at (x, y) moving along v at minimum speed.
func (b *Ball) Respawn(x, y float64, v Velocity) {
	b.X = x
	b.Y = y
	b.Velocity = v
	b.speed = b.minSpeed
}

// Draw renders the ball as a white disc.
func (b *Ball) Draw(ctx DrawContext) error {
	ctx.Surface.FillCircle(b.X, b.Y, b.Radius, draw.ColorWhite)
	return nil
}
