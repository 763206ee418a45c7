package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Tokens   []string `yaml:"tokens" env:"TICTACTOE_TOKENS" env-default:"X,O"`
	Bot      string   `yaml:"bot" env:"TICTACTOE_BOT"`
	Color    string   `yaml:"color" env:"TICTACTOE_COLOR" env-default:"auto"`
	History  History  `yaml:"history"`
	Redis    Redis    `yaml:"redis"`
}

type History struct {
	Enabled bool `yaml:"enabled" env:"TICTACTOE_HISTORY_ENABLED"`
	Limit   int  `yaml:"limit" env:"TICTACTOE_HISTORY_LIMIT" env-default:"10"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	DB      int           `yaml:"db" env:"TICTACTOE_REDIS_DB" env-default:"0"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_REDIS_TTL" env-default:"168h"`
}

// Load - reads the yaml file at path when it exists; the environment always
// applies on top.
func Load(path string) (*Config, error) {
	config := newDefaults()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	return config, nil
}

// newDefaults - defaults that a zero value in the file must be able to turn
// off. cleanenv would re-apply env-default to those.
func newDefaults() *Config {
	return &Config{
		History: History{Enabled: true},
	}
}

// MustLoad - same as Load but panics.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// PlayerTokens - tokens in turn order.
func (that *Config) PlayerTokens() ([]entity.Token, error) {
	tokens := make([]entity.Token, 0, len(that.Tokens))
	for _, label := range that.Tokens {
		token, err := entity.NewToken(label)
		if err != nil {
			return nil, fmt.Errorf("invalid token in config: %w", err)
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}
