// Package config loads optional yaml configuration with the board catalog, sounds and the daily goal
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

const (
	maxGoal     = 1000
	maxDebounce = 5 * time.Second
)

// Config is the yaml configuration. All fields optional, zero values replaced by defaults.
type Config struct {
	Boards   []string      `yaml:"boards" json:"boards,omitempty" jsonschema:"description=built-in job board catalog shown after custom boards"`
	Sounds   Sounds        `yaml:"sounds" json:"sounds,omitempty" jsonschema:"description=audio cues"`
	Goal     int           `yaml:"goal" json:"goal,omitempty" jsonschema:"description=daily responses goal for progress bar,minimum=0,maximum=1000"`
	Debounce time.Duration `yaml:"debounce" json:"debounce,omitempty" jsonschema:"type=string,description=autocomplete delay after the last keystroke like 300ms"`
}

// Sounds defines audio cues
type Sounds struct {
	Error   string   `yaml:"error" json:"error,omitempty" jsonschema:"description=sound played on empty input"`
	Success []string `yaml:"success" json:"success,omitempty" jsonschema:"description=sound(s) played on update rotating in order"`
}

// Default returns configuration used without a file
func Default() Config {
	return Config{
		Sounds: Sounds{
			Error:   "error_sound.mp3",
			Success: []string{"success_sound.mp3"},
		},
		Goal:     10,
		Debounce: 300 * time.Millisecond,
	}
}

// Load reads yaml file and fills missing values from defaults. Empty path returns defaults.
func Load(path string) (Config, error) {
	res := Default()
	if path == "" {
		return res, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from user's options
	if err != nil {
		return Config{}, fmt.Errorf("can't read config %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("can't parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if len(cfg.Boards) > 0 {
		res.Boards = cfg.Boards
	}
	if cfg.Sounds.Error != "" {
		res.Sounds.Error = cfg.Sounds.Error
	}
	if len(cfg.Sounds.Success) > 0 {
		res.Sounds.Success = cfg.Sounds.Success
	}
	if cfg.Goal > 0 {
		res.Goal = cfg.Goal
	}
	if cfg.Debounce > 0 {
		res.Debounce = cfg.Debounce
	}
	return res, nil
}

func (c Config) validate() error {
	for i, b := range c.Boards {
		if b == "" {
			return fmt.Errorf("board %d is empty", i+1)
		}
	}
	for i, s := range c.Sounds.Success {
		if s == "" {
			return fmt.Errorf("success sound %d is empty", i+1)
		}
	}
	if c.Goal < 0 || c.Goal > maxGoal {
		return fmt.Errorf("goal must be between 0 and %d", maxGoal)
	}
	if c.Debounce < 0 || c.Debounce > maxDebounce {
		return fmt.Errorf("debounce must be between 0 and %v", maxDebounce)
	}
	return nil
}

// GenerateSchema makes JSON schema of the config file
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
