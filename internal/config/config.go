package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries everything the game needs at startup. Values come from an
// optional yaml file, then the environment; command-line flags override both
// in cmd/mines.
type Config struct {
	Rows     int    `yaml:"rows" env:"MINES_ROWS" env-default:"9"`
	Cols     int    `yaml:"cols" env:"MINES_COLS" env-default:"9"`
	Mines    int    `yaml:"mines" env:"MINES_COUNT" env-default:"10"`
	Seed     uint64 `yaml:"seed" env:"MINES_SEED" env-default:"0"`
	TUI      bool   `yaml:"tui" env:"MINES_TUI" env-default:"false"`
	LogLevel string `yaml:"log-level" env:"MINES_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"MINES_LOG_FILE" env-default:"mines.log"`
}

// Load reads the config file at path when it exists, falling back to
// environment variables and defaults otherwise. The game must be playable
// with no config file at all.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return config, nil
}
