package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/pingpong/internal/config"
)

func TestPlayerController_VelocityY(t *testing.T) {
	c := NewPlayerController(nil)

	tests := []struct {
		name string
		in   Input
		want int
	}{
		{name: "idle", in: Input{}, want: 0},
		{name: "up", in: Input{Up: true}, want: -1},
		{name: "down", in: Input{Down: true}, want: 1},
		{name: "both cancel", in: Input{Up: true, Down: true}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VelocityY(tt.in))
		})
	}
}

func TestPlayerController_Update(t *testing.T) {
	s := config.Default()
	court := newTestCourt(s)
	p := court.LeftPaddle()
	c := NewPlayerController(p)
	startY := p.Y

	c.Update(0.1, Input{Up: true})
	assert.InDelta(t, startY-15, p.Y, 1e-9)

	c.Update(0.1, Input{Down: true})
	assert.InDelta(t, startY, p.Y, 1e-9)

	c.Update(0.1, Input{})
	assert.InDelta(t, startY, p.Y, 1e-9)
}

// newTestCPU puts the ball dist pixels to the left of the right paddle.
func newTestCPU(s config.Settings, dist, ballY float64, rng Rand) (*CPUController, *Paddle, *Ball) {
	court := newTestCourt(s)
	paddle := court.RightPaddle()
	ball := NewBall(s, paddle.X-dist, ballY, court, &recordingScorer{})
	return NewCPUController(s, paddle, ball, rng), paddle, ball
}

func TestCPUController_PredictChance(t *testing.T) {
	s := config.Default()

	tests := []struct {
		name  string
		dist  float64
		speed float64
		want  float64
	}{
		{name: "close and slow", dist: 20, speed: 100, want: 1.0},
		{name: "closer than min", dist: 0, speed: 100, want: 1.05},
		{name: "far and slow", dist: 420, speed: 100, want: 0},
		{name: "close and fast", dist: 20, speed: 300, want: 0.5},
		{name: "mid", dist: 220, speed: 200, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, ball := newTestCPU(s, tt.dist, 200, &scriptedRand{values: []float64{0}})
			ball.SetSpeed(tt.speed)

			assert.InDelta(t, tt.dist, c.BallDistance(), 1e-9)
			assert.InDelta(t, tt.want, c.PredictChance(), 1e-9)
		})
	}
}

func TestCPUController_CertainChanceAlwaysTracks(t *testing.T) {
	s := config.Default()
	rng := &scriptedRand{values: []float64{0.999999}}

	// Given: predictChance is exactly 1 and the ball is above the paddle
	c, paddle, _ := newTestCPU(s, 20, 100, rng)
	startY := paddle.Y

	// When
	c.Update(0.1)

	// Then: the paddle moves toward the ball using a single draw
	assert.Less(t, paddle.Y, startY)
	assert.Equal(t, 1, rng.calls)
}

func TestCPUController_TracksDown(t *testing.T) {
	s := config.Default()
	c, paddle, _ := newTestCPU(s, 20, 300, &scriptedRand{values: []float64{0.5}})
	startY := paddle.Y

	c.Update(0.1)

	assert.Greater(t, paddle.Y, startY)
}

func TestCPUController_WrongMove(t *testing.T) {
	s := config.Default()

	// Given: the first draw misses and the second falls under wrongMoveChance
	rng := &scriptedRand{values: []float64{0.9, 0.1}}
	c, paddle, _ := newTestCPU(s, 420, 100, rng)
	startY := paddle.Y

	c.Update(0.1)

	// Then: the paddle moves away from the ball above it
	assert.Greater(t, paddle.Y, startY)
	assert.Equal(t, 2, rng.calls)
}

func TestCPUController_StaysStill(t *testing.T) {
	s := config.Default()

	rng := &scriptedRand{values: []float64{0.9, 0.5}}
	c, paddle, _ := newTestCPU(s, 420, 100, rng)
	startY := paddle.Y

	c.Update(0.1)

	assert.Equal(t, startY, paddle.Y)
	assert.Equal(t, 2, rng.calls)
}
