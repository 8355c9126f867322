// Package config provides game settings and process configuration.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env holds process-level configuration read from environment variables.
type Env struct {
	SSHHost        string `env:"SSH_HOST" env-default:"::"`
	SSHPort        string `env:"SSH_PORT" env-default:"2222"`
	SSHHostKeyPath string `env:"SSH_HOST_KEY" env-default:"/app/keys/host_key"`
	SSHDisplayHost string `env:"SSH_DISPLAY_HOST" env-default:"your-server.com"`
	WebHost        string `env:"WEB_HOST" env-default:"0.0.0.0"`
	WebPort        string `env:"WEB_PORT" env-default:"8080"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	LogFile        string `env:"LOG_FILE"`
	SettingsPath   string `env:"PONG_CONFIG"`
}

// LoadEnv reads Env from the environment, applying defaults.
func LoadEnv() (Env, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Env{}, fmt.Errorf("read environment: %w", err)
	}
	return env, nil
}
