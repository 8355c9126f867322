// Package loop runs a pong match: the table simulation, the start button
// and the fixed-rate frame loop that drives them over a terminal.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/draw"
	"github.com/tomz197/pingpong/internal/input"
)

// Options configures Run.
type Options struct {
	// TermSizeFunc reports the terminal size. Defaults to stdout's size.
	TermSizeFunc draw.TermSizeFunc
	// Settings defaults to config.Default() when left zero.
	Settings config.Settings
	// Seed for spawn directions and CPU decisions. Zero picks a time-based seed.
	Seed int64
	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// Run plays matches on the terminal behind r and w until the player quits
// or the input ends. Each frame is Input → Update → Draw.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	settings := opts.Settings
	frameTime := settings.FrameTime()

	game := NewGame(settings, rand.New(rand.NewSource(opts.Seed)), opts.Logger)
	stream := input.StartStream(r)
	defer stream.Stop()
	out := draw.NewChunkWriter(w)

	draw.HideCursor(out)
	draw.EnableMouse(out)
	draw.ClearScreen(out)
	defer func() {
		draw.DisableMouse(out)
		draw.ShowCursor(out)
		draw.ClearScreen(out)
		_ = out.Flush()
	}()

	termWidth, termHeight, _ := opts.TermSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(settings, termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, settings.CanvasWidth, settings.CanvasHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || in.Closed {
			opts.Logger.Debug("leaving game loop", "quit", in.Quit, "closed", in.Closed)
			return nil
		}

		updateScreen(settings, canvas, out, opts.TermSizeFunc)

		// ===== UPDATE PHASE =====
		idle := !game.Table().IsMatchRunning()
		if in.Click {
			x, y := canvas.TerminalToLogical(in.ClickCol, in.ClickRow)
			game.Click(x, y)
		}
		game.Tick(dt, in)
		if idle && game.Table().IsMatchRunning() {
			// Keys held on the start screen must not move the paddle
			input.ResetKeyInput(stream)
		}

		// ===== DRAW PHASE =====
		if err := game.Draw(canvas); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if err := canvas.Render(out); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Settings == (config.Settings{}) {
		o.Settings = config.Default()
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// updateScreen follows terminal resizes. When the render area moves or
// changes size the terminal is cleared to remove residual cells outside it.
func updateScreen(settings config.Settings, canvas *draw.Canvas, w io.Writer, termSize draw.TermSizeFunc) {
	termWidth, termHeight, err := termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(settings, termWidth, termHeight)

	if renderWidth != canvas.TerminalWidth() || renderHeight != canvas.TerminalHeight() ||
		offsetCol != canvas.OffsetCol() || offsetRow != canvas.OffsetRow() {
		draw.ClearScreen(w)
		canvas.ForceRedraw()
	}

	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
}

// clampTermSize limits the render area to the maximum terminal size and
// centers it in the terminal.
func clampTermSize(settings config.Settings, termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, settings.MaxTermWidth)
	renderHeight = min(termHeight, settings.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
