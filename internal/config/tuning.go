package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned by Validate when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the runtime knobs of a game session.
// Gameplay rules (damage, speeds, spawn odds) are fixed and live with the game code.
type Tuning struct {
	// Seed for the game's random source. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`

	// TickDelay is the fixed pause at the end of every tick.
	TickDelay time.Duration `yaml:"tick_delay"`

	// WinScore is the score that ends the game with a win.
	WinScore int `yaml:"win_score"`

	// IdleTimeout ends a remote session with no input for this long.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// Max render area in terminal cells; larger terminals get a centred, bordered area.
	MaxTermWidth  int `yaml:"max_term_width"`
	MaxTermHeight int `yaml:"max_term_height"`
}

// DefaultTuning returns the tuning used when no config file is present.
func DefaultTuning() Tuning {
	return Tuning{
		TickDelay:     50 * time.Millisecond,
		WinScore:      4000,
		IdleTimeout:   2 * time.Minute,
		MaxTermWidth:  192,
		MaxTermHeight: 54,
	}
}

// LoadTuning loads tuning from a YAML file on top of the defaults.
// A missing file is not an error.
func LoadTuning(path string) (Tuning, error) {
	cfg := DefaultTuning()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (t Tuning) Validate() error {
	switch {
	case t.TickDelay <= 0:
		return fmt.Errorf("%w: tick_delay must be positive", ErrInvalidTuning)
	case t.WinScore <= 0:
		return fmt.Errorf("%w: win_score must be positive", ErrInvalidTuning)
	case t.IdleTimeout <= 0:
		return fmt.Errorf("%w: idle_timeout must be positive", ErrInvalidTuning)
	case t.MaxTermWidth < 20 || t.MaxTermHeight < 10:
		return fmt.Errorf("%w: max terminal size must be at least 20x10", ErrInvalidTuning)
	}
	return nil
}
