package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PlayerKindHuman = "human"
	PlayerKindAI    = "ai"
)

var (
	ErrInvalidStartValue  = errors.New("game start value must be at least 2")
	ErrInvalidSearchDepth = errors.New("game search depth must be at least 1")
	ErrUnknownPlayerKind  = errors.New("unknown player kind")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:""`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	StartValue  int    `yaml:"start-value" env:"GAME_START_VALUE" env-default:"1000"`
	SearchDepth int    `yaml:"search-depth" env:"GAME_SEARCH_DEPTH" env-default:"15"`
	PlayerOne   string `yaml:"player-one" env:"GAME_PLAYER_ONE" env-default:"human"`
	PlayerTwo   string `yaml:"player-two" env:"GAME_PLAYER_TWO" env-default:"ai"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file, or only the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.StartValue < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidStartValue, that.Game.StartValue)
	}

	if that.Game.SearchDepth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSearchDepth, that.Game.SearchDepth)
	}

	for _, kind := range []string{that.Game.PlayerOne, that.Game.PlayerTwo} {
		if kind != PlayerKindHuman && kind != PlayerKindAI {
			return fmt.Errorf("%w: %q", ErrUnknownPlayerKind, kind)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
