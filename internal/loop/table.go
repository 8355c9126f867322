package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/draw"
	"github.com/tomz197/pingpong/internal/object"
	"github.com/tomz197/pingpong/internal/physics"
)

// Table owns everything on the court and drives one simulation step per frame.
// It is the Court the ball collides against and the Scorer it reports to.
type Table struct {
	settings config.Settings
	rng      object.Rand
	logger   *log.Logger

	leftPaddle  *object.Paddle
	rightPaddle *object.Paddle
	ball        *object.Ball
	player      *object.PlayerController
	cpu         *object.CPUController
	scoreBoard  *object.ScoreBoard

	running bool
}

var (
	_ object.Court  = (*Table)(nil)
	_ object.Scorer = (*Table)(nil)
)

// NewTable sets up paddles on both sides and the ball at the center.
// The left paddle belongs to the local player, the right one to the CPU.
func NewTable(settings config.Settings, rng object.Rand, logger *log.Logger) *Table {
	t := &Table{
		settings:   settings,
		rng:        rng,
		logger:     logger,
		scoreBoard: object.NewScoreBoard(settings),
	}

	paddleY := settings.CanvasHeight/2 - settings.PaddleHeight/2
	t.leftPaddle = object.NewPaddle(settings, settings.CourtMarginX, paddleY, object.PlayerOne, t)
	t.rightPaddle = object.NewPaddle(settings,
		settings.CanvasWidth-settings.PaddleWidth-settings.CourtMarginX, paddleY, object.PlayerTwo, t)
	t.ball = object.NewBall(settings, settings.CanvasWidth/2, settings.CanvasHeight/2, t, t)

	t.player = object.NewPlayerController(t.leftPaddle)
	t.cpu = object.NewCPUController(settings, t.rightPaddle, t.ball, rng)
	return t
}

// Bounds returns the court area between the two walls.
func (t *Table) Bounds() physics.Bounds {
	inset := t.settings.WallInset()
	return physics.Bounds{
		Upper: inset,
		Lower: t.settings.CanvasHeight - inset,
		Left:  0,
		Right: t.settings.CanvasWidth,
	}
}

func (t *Table) LeftPaddle() *object.Paddle { return t.leftPaddle }
func (t *Table) RightPaddle() *object.Paddle { return t.rightPaddle }
func (t *Table) Ball() *object.Ball { return t.ball }

func (t *Table) ScoreBoard() *object.ScoreBoard { return t.scoreBoard }

// IsMatchRunning reports whether a match is in progress.
func (t *Table) IsMatchRunning() bool {
	return t.running
}

// Update advances the match by dt seconds: player, CPU, then ball.
// Nothing moves while no match is running.
func (t *Table) Update(dt float64, in object.Input) {
	if !t.running {
		return
	}
	t.player.Update(dt, in)
	t.cpu.Update(dt)
	t.ball.Update(dt)
}

// StartMatch resets scores and positions and serves the first ball.
// It does not check whether a match is already running.
func (t *Table) StartMatch() {
	t.running = true
	t.scoreBoard.Reset()
	t.scoreBoard.Round = 1
	t.leftPaddle.Reset()
	t.rightPaddle.Reset()
	t.SpawnBall()

	t.logger.Info("match started", "winScore", t.settings.WinScore)
}

// SpawnBall centers the ball at minimum speed with a random diagonal direction.
func (t *Table) SpawnBall() {
	v := object.Velocity{X: t.randomSign(), Y: t.randomSign()}
	t.ball.Respawn(t.settings.CanvasWidth/2, t.settings.CanvasHeight/2, v)
}

func (t *Table) randomSign() int {
	if t.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// ScorePoint credits slot with a point. The match stops once someone has won,
// otherwise the next round begins with a fresh ball.
func (t *Table) ScorePoint(slot object.PlayerSlot) {
	t.scoreBoard.AddPoint(slot)
	t.logger.Debug("point scored",
		"player", slot,
		"score", t.scoreBoard.Score(slot),
		"round", t.scoreBoard.Round)

	if winner := t.scoreBoard.Winner(); winner != object.PlayerNone {
		t.running = false
		t.logger.Info("match finished",
			"winner", winner,
			"one", t.scoreBoard.PlayerOneScore,
			"two", t.scoreBoard.PlayerTwoScore,
			"rounds", t.scoreBoard.Round)
		return
	}

	t.scoreBoard.Round++
	t.SpawnBall()
}

// Draw renders walls, paddles, ball and scores.
func (t *Table) Draw(ctx object.DrawContext) error {
	s := t.settings
	ctx.Surface.FillRect(0, s.CourtMarginY, s.CanvasWidth, s.WallSize, draw.ColorWall)
	ctx.Surface.FillRect(0, s.CanvasHeight-s.CourtMarginY-s.WallSize, s.CanvasWidth, s.WallSize, draw.ColorWall)

	drawables := []object.Drawable{t.leftPaddle, t.rightPaddle, t.ball, t.scoreBoard}
	for _, d := range drawables {
		if err := d.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
