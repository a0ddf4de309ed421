package config

import (
	"errors"
	"fmt"
	"os"

	"ctchen222/BoardGameKit/internal/game"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv overrides the location of the YAML config file.
const PathEnv = "BGK_CONFIG"

const defaultPath = "config.yml"

type Config struct {
	LogLevel       string    `yaml:"log-level" env:"BGK_LOG_LEVEL" env-default:"info"`
	HTTPAddr       string    `yaml:"http-addr" env:"BGK_HTTP_ADDR" env-default:"127.0.0.1:8080"`
	WebDir         string    `yaml:"web-dir" env:"BGK_WEB_DIR" env-default:"./web"`
	StartingPlayer string    `yaml:"starting-player" env:"BGK_STARTING_PLAYER" env-default:"X"`
	Telemetry      Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"BGK_TELEMETRY_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"BGK_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName  string `yaml:"service-name" env:"BGK_SERVICE_NAME" env-default:"board-game-kit"`
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides and defaults. An empty path means BGK_CONFIG or ./config.yml.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path = defaultPath
	}

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	} else {
		return nil, fmt.Errorf("unable to stat config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := game.ParsePlayer(c.StartingPlayer); err != nil {
		return fmt.Errorf("starting-player: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level: unknown level %q", c.LogLevel)
	}
	if c.HTTPAddr == "" {
		return errors.New("http-addr: must not be empty")
	}
	return nil
}

// Starting returns the configured starting player.
func (c *Config) Starting() game.Player {
	p, err := game.ParsePlayer(c.StartingPlayer)
	if err != nil {
		return game.PlayerX
	}
	return p
}
