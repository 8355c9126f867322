package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	assert.Equal(t, 7, s.WinScore)
	assert.Equal(t, time.Second/60, s.FrameTime())
	assert.Equal(t, 25.0, s.WallInset())
	assert.Equal(t, 350.0, s.PlayableHeight())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   error
	}{
		{name: "win score", modify: func(s *Settings) { s.WinScore = 0 }, want: ErrInvalidWinScore},
		{name: "frame rate", modify: func(s *Settings) { s.TargetFPS = 0 }, want: ErrInvalidFrameRate},
		{name: "ball speed order", modify: func(s *Settings) { s.BallMinSpeed = 400 }, want: ErrInvalidBallSpeed},
		{name: "paddle too tall", modify: func(s *Settings) { s.PaddleHeight = 1000 }, want: ErrInvalidPaddle},
		{name: "prediction distance", modify: func(s *Settings) { s.PredictionDistanceMax = 0 }, want: ErrInvalidPrediction},
		{name: "negative acceleration", modify: func(s *Settings) { s.BallAcceleration = -50 }, want: ErrInvalidAccel},
		{name: "wrong move above one", modify: func(s *Settings) { s.WrongMoveChance = 7 }, want: ErrInvalidChance},
		{name: "wrong move negative", modify: func(s *Settings) { s.WrongMoveChance = -0.1 }, want: ErrInvalidChance},
		{name: "error margin above one", modify: func(s *Settings) { s.ErrorMarginMax = 1.5 }, want: ErrInvalidChance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)

			require.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}

func TestLoadSettings_FromEnv(t *testing.T) {
	// Given: a win score override in the environment
	t.Setenv("PONG_WIN_SCORE", "3")

	// When: loading settings without a file
	s, err := LoadSettings("")

	// Then: only the override changes
	require.NoError(t, err)
	want := Default()
	want.WinScore = 3
	require.Equal(t, want, s)
}

func TestLoadSettings_FromFile(t *testing.T) {
	// Given: a YAML settings file
	path := filepath.Join(t.TempDir(), "pong.yml")
	data := "win-score: 11\nball-max-speed: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	// When: loading it
	s, err := LoadSettings(path)

	// Then: file values overlay the defaults
	require.NoError(t, err)
	assert.Equal(t, 11, s.WinScore)
	assert.Equal(t, 250.0, s.BallMaxSpeed)
	assert.Equal(t, Default().CanvasWidth, s.CanvasWidth)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("PONG_WIN_SCORE", "0")

	_, err := LoadSettings("")

	require.ErrorIs(t, err, ErrInvalidWinScore)
}

func TestLoadSettings_RejectsNegativeAcceleration(t *testing.T) {
	t.Setenv("PONG_BALL_ACCELERATION", "-50")

	_, err := LoadSettings("")

	require.ErrorIs(t, err, ErrInvalidAccel)
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")

	env, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "2323", env.SSHPort)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, "8080", env.WebPort)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")

	assert.Equal(t, log.InfoLevel, NewLogger("nonsense", &buf).GetLevel())
}
