// Package config resolves server settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/soaringjerry/bemestar/internal/utils"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Addr            string
	Env             string
	SessionBackend  string
	SessionPath     string
	SessionSecret   string
	LatencyScale    float64
	CORSOrigin      string
	DefaultLocale   string
	EnvFile         string
	LogJSON         bool
	ShutdownTimeout time.Duration
}

// Production reports whether BEMESTAR_ENV is "production".
func (c Config) Production() bool { return c.Env == "production" }

// Load reads the .env file (if any) into the environment without
// overriding variables that are already set, then applies env defaults
// and finally the command-line flags.
func Load(args []string) (Config, error) {
	var cfg Config

	cfg.EnvFile = utils.SafeEnv("BEMESTAR_ENV_FILE", ".env")
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
	}

	cfg.Addr = utils.SafeEnv("BEMESTAR_ADDR", ":8080")
	cfg.Env = utils.SafeEnv("BEMESTAR_ENV", "development")
	cfg.SessionBackend = utils.SafeEnv("BEMESTAR_SESSION_BACKEND", BackendFile)
	cfg.SessionPath = utils.SafeEnv("BEMESTAR_SESSION_PATH", "./data/session")
	cfg.SessionSecret = os.Getenv("BEMESTAR_SESSION_SECRET")
	cfg.LatencyScale = utils.EnvFloat("BEMESTAR_LATENCY_SCALE", 1)
	cfg.CORSOrigin = os.Getenv("BEMESTAR_CORS_ORIGIN")
	cfg.DefaultLocale = utils.SafeEnv("BEMESTAR_DEFAULT_LOCALE", utils.DefaultLocale)
	cfg.LogJSON = utils.EnvBool("BEMESTAR_LOG_JSON", cfg.Production())
	cfg.ShutdownTimeout = utils.EnvDuration("BEMESTAR_SHUTDOWN_TIMEOUT", 10*time.Second)

	fs := flag.NewFlagSet("bemestar", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "session backend (memory, file or sqlite)")
	fs.StringVar(&cfg.SessionPath, "session-path", cfg.SessionPath, "session directory")
	fs.Float64Var(&cfg.LatencyScale, "latency-scale", cfg.LatencyScale, "multiplier for simulated latency, 0 disables it")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch cfg.SessionBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("shutdown timeout must be positive")
	}
	if cfg.LatencyScale < 0 {
		return Config{}, errors.New("latency scale must not be negative")
	}
	if cfg.Production() && cfg.SessionSecret == "" {
		return Config{}, errors.New("BEMESTAR_SESSION_SECRET required in production")
	}
	return cfg, nil
}
