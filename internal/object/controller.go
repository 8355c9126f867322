package object

import (
	"math"

	"github.com/tomz197/pingpong/internal/config"
)

// PlayerController moves a paddle from the held up/down keys.
type PlayerController struct {
	paddle *Paddle
}

// NewPlayerController creates a controller for the given paddle.
func NewPlayerController(paddle *Paddle) *PlayerController {
	return &PlayerController{paddle: paddle}
}

// VelocityY sums the held keys: up counts -1, down +1.
func (c *PlayerController) VelocityY(in Input) int {
	v := 0
	if in.Up {
		v--
	}
	if in.Down {
		v++
	}
	return v
}

// Update moves the paddle for one frame.
func (c *PlayerController) Update(dt float64, in Input) {
	switch v := c.VelocityY(in); {
	case v > 0:
		c.paddle.MoveDown(dt)
	case v < 0:
		c.paddle.MoveUp(dt)
	}
}

// CPUController steers a paddle toward the ball. Each frame it tracks the
// ball with a probability that drops with distance and ball speed; otherwise
// it sometimes moves the wrong way on purpose.
type CPUController struct {
	paddle *Paddle
	ball   *Ball
	rng    Rand

	predictionDistanceMin float64
	predictionDistanceMax float64
	errorMarginMax        float64
	wrongMoveChance       float64
}

// NewCPUController creates a controller for paddle chasing ball.
func NewCPUController(settings config.Settings, paddle *Paddle, ball *Ball, rng Rand) *CPUController {
	return &CPUController{
		paddle:                paddle,
		ball:                  ball,
		rng:                   rng,
		predictionDistanceMin: settings.PredictionDistanceMin,
		predictionDistanceMax: settings.PredictionDistanceMax,
		errorMarginMax:        settings.ErrorMarginMax,
		wrongMoveChance:       settings.WrongMoveChance,
	}
}

// BallDistance is the horizontal distance between paddle and ball.
func (c *CPUController) BallDistance() float64 {
	return math.Abs(c.paddle.X - c.ball.X)
}

// ErrorMargin grows with the ball's normalized speed.
func (c *CPUController) ErrorMargin() float64 {
	return c.errorMarginMax * c.ball.NormalizedSpeed()
}

// PredictChance is the probability of tracking the ball this frame.
// It is not clamped; values outside [0, 1] saturate against the draw.
func (c *CPUController) PredictChance() float64 {
	distance := c.BallDistance() - c.predictionDistanceMin
	return 1.0 - distance/c.predictionDistanceMax - c.ErrorMargin()
}

// Update draws once to decide whether to track the ball. On a miss it draws
// again to decide whether to move the wrong way.
func (c *CPUController) Update(dt float64) {
	roll := c.rng.Float64()
	chance := c.PredictChance()

	// Positive when the ball is above the paddle center
	ballDelta := sign(c.paddle.CenterY() - c.ball.Y)

	if roll <= chance {
		if ballDelta > 0 {
			c.paddle.MoveUp(dt)
		} else {
			c.paddle.MoveDown(dt)
		}
		return
	}

	if c.rng.Float64() < c.wrongMoveChance {
		if ballDelta > 0 {
			c.paddle.MoveDown(dt)
		} else {
			c.paddle.MoveUp(dt)
		}
	}
}
