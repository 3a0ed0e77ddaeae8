package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	FileName = "config.yml"
	xdgFile  = "tictactoe/" + FileName

	FirstPlayerRandom   = "random"
	FirstPlayerComputer = "computer"
	FirstPlayerHuman    = "human"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:"random"`
	HideBoard   bool   `yaml:"hide-board" env:"TICTACTOE_HIDE_BOARD"`
}

// MustLoad - load configuration from path, or from the XDG config dir when path doesn't exist.
// Without any file the environment and defaults are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	file, err := lookup(path)
	if err != nil {
		return nil, err
	}

	if file == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(file, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %q: %w", file, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func lookup(path string) (string, error) {
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("unable to stat config %q: %w", path, err)
	}

	if found, err := xdg.SearchConfigFile(xdgFile); err == nil {
		return found, nil
	}

	return "", nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	switch that.FirstPlayer {
	case FirstPlayerRandom, FirstPlayerComputer, FirstPlayerHuman:
	default:
		return fmt.Errorf("%w: first-player %q", apperror.ErrInvalidConfig, that.FirstPlayer)
	}

	return nil
}

// FirstPlayerFunc returns the picker for the player that opens each game.
func (that *Config) FirstPlayerFunc() func() entity.Player {
	switch that.FirstPlayer {
	case FirstPlayerComputer:
		return func() entity.Player { return entity.Computer }
	case FirstPlayerHuman:
		return func() entity.Player { return entity.Human }
	default:
		return entity.RandomPlayer
	}
}
