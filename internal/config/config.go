package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the landing server configuration.
type Config struct {
	Addr        string `env:"LANDING_ADDR" envDefault:":4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// WasmDir holds main.wasm and wasm_exec.js for the browser runtime.
	WasmDir string `env:"WASM_DIR" envDefault:"./web"`

	// WelcomeDelay is handed to the browser runtime through the page shell.
	WelcomeDelay time.Duration `env:"WELCOME_DELAY" envDefault:"150ms"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsLocal reports whether the server runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Environment == "local" || c.Environment == "development"
}

// Load reads envFiles (missing files are skipped) and parses the environment.
// Values already present in the environment win over file values.
func Load(log *zap.Logger, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("env file not found, skipping", zap.String("path", f))
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.WelcomeDelay < 0 {
		return nil, fmt.Errorf("WELCOME_DELAY must not be negative, got %s", cfg.WelcomeDelay)
	}

	log.Info("configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.Addr),
		zap.String("wasm_dir", cfg.WasmDir),
		zap.Duration("welcome_delay", cfg.WelcomeDelay),
	)

	return cfg, nil
}
