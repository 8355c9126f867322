package loop

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/object"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestTable(t *testing.T, settings config.Settings) *Table {
	t.Helper()
	return NewTable(settings, fixedRand(0.9), log.New(io.Discard))
}

func TestTable_Bounds(t *testing.T) {
	table := newTestTable(t, config.Default())

	b := table.Bounds()

	assert.Equal(t, 25.0, b.Upper)
	assert.Equal(t, 375.0, b.Lower)
	assert.Equal(t, 0.0, b.Left)
	assert.Equal(t, 600.0, b.Right)
}

func TestTable_PaddlePositions(t *testing.T) {
	table := newTestTable(t, config.Default())

	assert.Equal(t, 12.0, table.LeftPaddle().X)
	assert.Equal(t, 576.0, table.RightPaddle().X)
	assert.Equal(t, 176.0, table.LeftPaddle().Y)
	assert.Equal(t, 176.0, table.RightPaddle().Y)
	assert.Equal(t, object.PlayerOne, table.LeftPaddle().Slot)
	assert.Equal(t, object.PlayerTwo, table.RightPaddle().Slot)
}

func TestTable_UpdateIdleDoesNothing(t *testing.T) {
	table := newTestTable(t, config.Default())
	ball := table.Ball()
	x, y := ball.X, ball.Y

	table.Update(1, object.Input{Up: true})

	assert.Equal(t, x, ball.X)
	assert.Equal(t, y, ball.Y)
	assert.Equal(t, 176.0, table.LeftPaddle().Y)
}

func TestTable_StartMatch(t *testing.T) {
	table := newTestTable(t, config.Default())
	table.ScoreBoard().PlayerTwoScore = 3
	table.LeftPaddle().MoveUp(0.5)

	table.StartMatch()

	assert.True(t, table.IsMatchRunning())
	assert.Zero(t, table.ScoreBoard().PlayerOneScore)
	assert.Zero(t, table.ScoreBoard().PlayerTwoScore)
	assert.Equal(t, 1, table.ScoreBoard().Round)
	assert.Equal(t, 176.0, table.LeftPaddle().Y)
	assert.Equal(t, 300.0, table.Ball().X)
	assert.Equal(t, 200.0, table.Ball().Y)
	assert.Equal(t, object.Velocity{X: 1, Y: 1}, table.Ball().Velocity)
	assert.Equal(t, 100.0, table.Ball().Speed())
}

func TestTable_SpawnBallDirection(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want int
	}{
		{name: "above half", draw: 0.75, want: 1},
		{name: "exactly half", draw: 0.5, want: -1},
		{name: "below half", draw: 0.1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(config.Default(), fixedRand(tt.draw), log.New(io.Discard))

			table.SpawnBall()

			assert.Equal(t, object.Velocity{X: tt.want, Y: tt.want}, table.Ball().Velocity)
		})
	}
}

func TestTable_BallLeavingLeftScoresForPlayerTwo(t *testing.T) {
	table := newTestTable(t, config.Default())
	table.StartMatch()

	// Given: the ball at court center moving straight left
	ball := table.Ball()
	ball.Velocity = object.Velocity{X: -1, Y: 0}
	ball.Y = 60

	// When: it travels past the left bound
	for i := 0; i < 400 && table.ScoreBoard().PlayerTwoScore == 0; i++ {
		table.Update(1.0/60, object.Input{})
	}

	// Then: player two scored and a new round started with a fresh ball
	require.Equal(t, 1, table.ScoreBoard().PlayerTwoScore)
	assert.Zero(t, table.ScoreBoard().PlayerOneScore)
	assert.Equal(t, 2, table.ScoreBoard().Round)
	assert.True(t, table.IsMatchRunning())
	assert.Equal(t, 300.0, ball.X)
	assert.Equal(t, 200.0, ball.Y)
	assert.Equal(t, 100.0, ball.Speed())
}

func TestTable_ScorePointAttributesBothSides(t *testing.T) {
	table := newTestTable(t, config.Default())
	table.StartMatch()

	table.ScorePoint(object.PlayerTwo)
	table.ScorePoint(object.PlayerOne)
	table.ScorePoint(object.PlayerTwo)

	assert.Equal(t, 1, table.ScoreBoard().PlayerOneScore)
	assert.Equal(t, 2, table.ScoreBoard().PlayerTwoScore)
	assert.Equal(t, 4, table.ScoreBoard().Round)
}

func TestTable_MatchEndsAtWinScore(t *testing.T) {
	table := newTestTable(t, config.Default())
	table.StartMatch()

	for i := 0; i < 6; i++ {
		table.ScorePoint(object.PlayerOne)
	}
	require.True(t, table.IsMatchRunning())
	round := table.ScoreBoard().Round

	// Given: a ball somewhere in play
	ball := table.Ball()
	ball.X, ball.Y = 100, 100
	ball.SetSpeed(250)

	// When: the seventh point is scored
	table.ScorePoint(object.PlayerOne)

	// Then: player one wins, the match stops and no ball is served
	assert.Equal(t, object.PlayerOne, table.ScoreBoard().Winner())
	assert.False(t, table.IsMatchRunning())
	assert.Equal(t, round, table.ScoreBoard().Round)
	assert.Equal(t, 100.0, ball.X)
	assert.Equal(t, 250.0, ball.Speed())

	// And: further updates do not move anything
	table.Update(1, object.Input{})
	assert.Equal(t, 100.0, ball.X)
}

func TestTable_CustomWinScore(t *testing.T) {
	settings := config.Default()
	settings.WinScore = 1
	table := newTestTable(t, settings)
	table.StartMatch()

	table.ScorePoint(object.PlayerTwo)

	assert.Equal(t, object.PlayerTwo, table.ScoreBoard().Winner())
	assert.False(t, table.IsMatchRunning())
}

func TestTable_PlayerMovesLeftPaddle(t *testing.T) {
	table := newTestTable(t, config.Default())
	table.StartMatch()

	table.Update(0.1, object.Input{Down: true})

	assert.InDelta(t, 191.0, table.LeftPaddle().Y, 1e-9)
}
