package object

import (
	"fmt"

	"github.com/tomz197/pingpong/internal/config"
	"github.com/tomz197/pingpong/internal/draw"
)

// ScoreBoard tracks both scores and the current round.
type ScoreBoard struct {
	PlayerOneScore int
	PlayerTwoScore int
	Round          int

	winScore int
}

// NewScoreBoard creates an empty scoreboard.
func NewScoreBoard(settings config.Settings) *ScoreBoard {
	return &ScoreBoard{winScore: settings.WinScore}
}

// Winner returns the first slot whose score reached the win score, or PlayerNone.
func (s *ScoreBoard) Winner() PlayerSlot {
	if s.PlayerOneScore >= s.winScore {
		return PlayerOne
	} else if s.PlayerTwoScore >= s.winScore {
		return PlayerTwo
	}
	return PlayerNone
}

// Score returns the score of slot.
func (s *ScoreBoard) Score(slot PlayerSlot) int {
	switch slot {
	case PlayerOne:
		return s.PlayerOneScore
	case PlayerTwo:
		return s.PlayerTwoScore
	default:
		return 0
	}
}

// AddPoint increments the score of slot.
func (s *ScoreBoard) AddPoint(slot PlayerSlot) {
	switch slot {
	case PlayerOne:
		s.PlayerOneScore++
	case PlayerTwo:
		s.PlayerTwoScore++
	}
}

// Reset zeroes both scores and the round.
func (s *ScoreBoard) Reset() {
	s.PlayerOneScore = 0
	s.PlayerTwoScore = 0
	s.Round = 0
}

// Draw renders scores along the top wall and the winner banner.
func (s *ScoreBoard) Draw(ctx DrawContext) error {
	surface := ctx.Surface
	width := surface.Width()

	surface.DrawText(8, 20, fmt.Sprintf("%s | %d", PlayerOne.Name(), s.PlayerOneScore), draw.FontSmall, draw.ColorText)
	surface.DrawText(width-115, 20, fmt.Sprintf("%d | %s", s.PlayerTwoScore, PlayerTwo.Name()), draw.FontSmall, draw.ColorText)
	surface.DrawText(width/2-50, 20, fmt.Sprintf("Round: %d", s.Round), draw.FontSmall, draw.ColorText)

	if winner := s.Winner(); winner != PlayerNone {
		surface.DrawText(width/2-75, 60, winner.Name()+" wins!", draw.FontLarge, draw.ColorText)
	}
	return nil
}
