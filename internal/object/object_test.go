package object

import (
	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/physics"
)

// testCourt is a fixed court with two paddles at their default positions.
type testCourt struct {
	bounds physics.Bounds
	left   *Paddle
	right  *Paddle
}

func newTestCourt(s config.Settings) *testCourt {
	c := &testCourt{
		bounds: physics.Bounds{
			Upper: s.WallInset(),
			Lower: s.CanvasHeight - s.WallInset(),
			Left:  0,
			Right: s.CanvasWidth,
		},
	}
	y := s.CanvasHeight/2 - s.PaddleHeight/2
	c.left = NewPaddle(s, s.CourtMarginX, y, PlayerOne, c)
	c.right = NewPaddle(s, s.CanvasWidth-s.PaddleWidth-s.CourtMarginX, y, PlayerTwo, c)
	return c
}

func (c *testCourt) Bounds() physics.Bounds { return c.bounds }
func (c *testCourt) LeftPaddle() *Paddle { return c.left }
func (c *testCourt) RightPaddle() *Paddle { return c.right }

// recordingScorer remembers every awarded point.
type recordingScorer struct {
	points []PlayerSlot
}

func (r *recordingScorer) ScorePoint(slot PlayerSlot) {
	r.points = append(r.points, slot)
}

// scriptedRand returns its values in order, then repeats the last one.
type scriptedRand struct {
	values []float64
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}
