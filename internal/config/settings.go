package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidWinScore   = errors.New("win score must be at least 1")
	ErrInvalidFrameRate  = errors.New("target fps must be positive")
	ErrInvalidBallSpeed  = errors.New("ball min speed must be positive and not above max speed")
	ErrInvalidPaddle     = errors.New("paddle must be positive and fit between the walls")
	ErrInvalidPrediction = errors.New("prediction distance max must be positive")
	ErrInvalidAccel      = errors.New("ball acceleration must not be negative")
	ErrInvalidChance     = errors.New("cpu error margin and wrong move chance must be within [0, 1]")
)

// Settings holds every tunable game parameter. It is a plain value: pass it
// into constructors instead of reading shared state.
type Settings struct {
	// Court
	CanvasWidth  float64 `yaml:"-"`
	CanvasHeight float64 `yaml:"-"`
	WallSize     float64 `yaml:"-"`
	CourtMarginX float64 `yaml:"-"`
	CourtMarginY float64 `yaml:"-"`

	// Match
	TargetFPS int `yaml:"target-fps" env:"PONG_TARGET_FPS"`
	WinScore  int `yaml:"win-score" env:"PONG_WIN_SCORE"`

	// Paddle
	PaddleWidth  float64 `yaml:"-"`
	PaddleHeight float64 `yaml:"-"`
	PaddleSpeed  float64 `yaml:"paddle-speed" env:"PONG_PADDLE_SPEED"`

	// Ball
	BallRadius       float64 `yaml:"-"`
	BallMinSpeed     float64 `yaml:"ball-min-speed" env:"PONG_BALL_MIN_SPEED"`
	BallMaxSpeed     float64 `yaml:"ball-max-speed" env:"PONG_BALL_MAX_SPEED"`
	BallAcceleration float64 `yaml:"ball-acceleration" env:"PONG_BALL_ACCELERATION"`

	// CPU opponent
	PredictionDistanceMin float64 `yaml:"prediction-distance-min" env:"PONG_CPU_PREDICTION_MIN"`
	PredictionDistanceMax float64 `yaml:"prediction-distance-max" env:"PONG_CPU_PREDICTION_MAX"`
	ErrorMarginMax        float64 `yaml:"error-margin-max" env:"PONG_CPU_ERROR_MARGIN"`
	WrongMoveChance       float64 `yaml:"wrong-move-chance" env:"PONG_CPU_WRONG_MOVE"`

	// Start button
	ButtonWidth  float64 `yaml:"-"`
	ButtonHeight float64 `yaml:"-"`

	// Terminal rendering
	MaxTermWidth  int `yaml:"max-term-width" env:"PONG_MAX_TERM_WIDTH"`
	MaxTermHeight int `yaml:"max-term-height" env:"PONG_MAX_TERM_HEIGHT"`
}

// Default returns the standard game settings.
func Default() Settings {
	return Settings{
		CanvasWidth:  600,
		CanvasHeight: 400,
		WallSize:     20,
		CourtMarginX: 12,
		CourtMarginY: 5,

		TargetFPS: 60,
		WinScore:  7,

		PaddleWidth:  12,
		PaddleHeight: 48,
		PaddleSpeed:  150,

		BallRadius:       8,
		BallMinSpeed:     100,
		BallMaxSpeed:     300,
		BallAcceleration: 2,

		PredictionDistanceMin: 20,
		PredictionDistanceMax: 400,
		ErrorMarginMax:        0.5,
		WrongMoveChance:       0.2,

		ButtonWidth:  120,
		ButtonHeight: 40,

		MaxTermWidth:  160,
		MaxTermHeight: 50,
	}
}

// LoadSettings returns Default overlaid with the YAML file at path, or with
// PONG_* environment variables when path is empty.
func LoadSettings(path string) (Settings, error) {
	s := Default()

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &s)
	} else {
		err = cleanenv.ReadEnv(&s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings describe a playable match.
func (s Settings) Validate() error {
	if s.WinScore < 1 {
		return fmt.Errorf("win score %d: %w", s.WinScore, ErrInvalidWinScore)
	}
	if s.TargetFPS <= 0 {
		return fmt.Errorf("target fps %d: %w", s.TargetFPS, ErrInvalidFrameRate)
	}
	if s.BallMinSpeed <= 0 || s.BallMinSpeed > s.BallMaxSpeed {
		return fmt.Errorf("ball speed [%g, %g]: %w", s.BallMinSpeed, s.BallMaxSpeed, ErrInvalidBallSpeed)
	}
	if s.PaddleSpeed <= 0 || s.PaddleHeight <= 0 || s.PaddleHeight > s.PlayableHeight() {
		return fmt.Errorf("paddle height %g speed %g: %w", s.PaddleHeight, s.PaddleSpeed, ErrInvalidPaddle)
	}
	if s.PredictionDistanceMax <= 0 {
		return fmt.Errorf("prediction distance %g: %w", s.PredictionDistanceMax, ErrInvalidPrediction)
	}
	if s.BallAcceleration < 0 {
		return fmt.Errorf("ball acceleration %g: %w", s.BallAcceleration, ErrInvalidAccel)
	}
	if !unitInterval(s.ErrorMarginMax) || !unitInterval(s.WrongMoveChance) {
		return fmt.Errorf("error margin %g wrong move %g: %w", s.ErrorMarginMax, s.WrongMoveChance, ErrInvalidChance)
	}
	return nil
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

// FrameTime is the target duration of one update/render tick.
func (s Settings) FrameTime() time.Duration {
	return time.Second / time.Duration(s.TargetFPS)
}

// WallInset is the distance from a canvas edge to the inner face of its wall.
func (s Settings) WallInset() float64 {
	return s.CourtMarginY + s.WallSize
}

// PlayableHeight is the vertical space between the two walls.
func (s Settings) PlayableHeight() float64 {
	return s.CanvasHeight - 2*s.WallInset()
}
