package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"MNK_LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Rows   int    `yaml:"rows" env:"MNK_ROWS" env-default:"3"`
	Cols   int    `yaml:"cols" env:"MNK_COLS" env-default:"3"`
	K      int    `yaml:"k" env:"MNK_K" env-default:"3"`
	Bounds string `yaml:"bounds" env:"MNK_BOUNDS" env-default:"full"`
}

var ErrUnknownBounds = errors.New("unknown bounds policy")

// MustLoad - load all configurations in config.yml file. Without the file only
// environment variables and defaults are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err = config.Board.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the board is usable: positive rows, cols and k and a
// known bounds policy.
func (that *Board) Validate() error {
	if that.Rows <= 0 || that.Cols <= 0 || that.K <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d k=%d", apperror.ErrInvalidDimension, that.Rows, that.Cols, that.K)
	}

	if _, err := that.GetBounds(); err != nil {
		return err
	}

	return nil
}

func (that *Board) GetBounds() (entity.Bounds, error) {
	switch bounds := entity.Bounds(that.Bounds); bounds {
	case entity.BoundsFull, entity.BoundsUpper:
		return bounds, nil
	case "":
		return entity.BoundsFull, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBounds, that.Bounds)
	}
}

// GetBoard returns the default board the driver offers before prompting.
func (that *Board) GetBoard() entity.Board {
	board := entity.NewBoard(that.Rows, that.Cols, that.K)
	if bounds, err := that.GetBounds(); err == nil {
		board.Bounds = bounds
	}

	return board
}
