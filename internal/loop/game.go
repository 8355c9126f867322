package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/draw"
	"github.com/tomz197/pingpong/internal/object"
	"github.com/tomz197/pingpong/internal/physics"
)

const startButtonLabel = "Start Match"

// Game wraps the table with the start button shown between matches.
type Game struct {
	table       *Table
	startButton physics.Rectangle
	logger      *log.Logger
}

// NewGame creates a game with an idle table.
func NewGame(settings config.Settings, rng object.Rand, logger *log.Logger) *Game {
	return &Game{
		table: NewTable(settings, rng, logger),
		startButton: physics.NewRectangle(
			settings.CanvasWidth/2-settings.ButtonWidth/2,
			settings.CanvasHeight/2-settings.ButtonHeight/2,
			settings.ButtonWidth,
			settings.ButtonHeight,
		),
		logger: logger,
	}
}

// Table returns the game's table.
func (g *Game) Table() *Table {
	return g.table
}

// StartButton returns the start button area in logical pixels.
func (g *Game) StartButton() physics.Rectangle {
	return g.startButton
}

// StartMatch starts a new match unless one is already running.
// It reports whether a match was started.
func (g *Game) StartMatch() bool {
	if g.table.IsMatchRunning() {
		return false
	}
	g.table.StartMatch()
	return true
}

// Click handles a pointer press at logical (x, y).
func (g *Game) Click(x, y float64) bool {
	if g.table.IsMatchRunning() || !g.startButton.Contains(x, y) {
		return false
	}
	g.logger.Debug("start button clicked", "x", x, "y", y)
	return g.StartMatch()
}

// Tick applies one frame of input and advances the simulation by dt seconds.
// The frame that starts a match only serves the ball.
func (g *Game) Tick(dt float64, in object.Input) {
	if in.Start && g.StartMatch() {
		return
	}
	g.table.Update(dt, in)
}

// Draw renders a full frame onto surface.
func (g *Game) Draw(surface draw.Surface) error {
	surface.Clear()

	ctx := object.DrawContext{Surface: surface}
	if err := g.table.Draw(ctx); err != nil {
		return err
	}

	if !g.table.IsMatchRunning() {
		b := g.startButton
		surface.FillRect(b.X, b.Y, b.Width, b.Height, draw.ColorButton)
		surface.DrawText(b.X+20, b.Y+b.Height/2+6, startButtonLabel, draw.FontSmall, draw.ColorText)
	}
	return nil
}
