package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Env is the process environment the CLI reads on startup.
type Env struct {
	SiteDir   string `env:"SITE_DIR" envDefault:"."`
	AppOrigin string `env:"APP_ORIGIN"`
	Port      string `env:"PORT" envDefault:"9010"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Wrap(err, "parse environment")
	}
	return e, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (e Env) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(e.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
