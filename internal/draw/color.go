package draw

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is an entry of the court palette.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorRed
	ColorBlue
	ColorWall
	ColorButton
	ColorText
)

// ColorReset resets all terminal attributes.
const ColorReset = "\033[0m"

// palette maps colors to xterm-256 indexes.
var palette = [...]int{
	ColorNone:   -1,
	ColorWhite:  15,
	ColorRed:    9,
	ColorBlue:   12,
	ColorWall:   234, // #1c1c1c
	ColorButton: 233, // #121212
	ColorText:   255, // #eeeeee
}

func (c Color) index() int {
	if int(c) >= len(palette) {
		return -1
	}
	return palette[c]
}

// Foreground returns the escape sequence selecting c as foreground color.
func (c Color) Foreground() string {
	if c.index() < 0 {
		return ""
	}
	return "\033[38;5;" + strconv.Itoa(c.index()) + "m"
}

// Background returns the escape sequence selecting c as background color.
func (c Color) Background() string {
	if c.index() < 0 {
		return ""
	}
	return "\033[48;5;" + strconv.Itoa(c.index()) + "m"
}

func (c Color) lipgloss() lipgloss.TerminalColor {
	if c.index() < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(c.index()))
}

// TextStyler renders text overlays. The color profile is fixed because the
// output is usually an SSH session, which cannot be probed like a local TTY.
type TextStyler struct {
	renderer *lipgloss.Renderer
}

// NewTextStyler creates a styler emitting 256-color sequences.
func NewTextStyler() *TextStyler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return &TextStyler{renderer: r}
}

// Render styles text with the given foreground and background colors.
func (s *TextStyler) Render(text string, size FontSize, fg, bg Color) string {
	style := s.renderer.NewStyle().Foreground(fg.lipgloss()).Background(bg.lipgloss())
	if size >= FontLarge {
		style = style.Bold(true)
	}
	return style.Render(text)
}
