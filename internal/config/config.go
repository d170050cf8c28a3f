// Package config provides YAML-based quiz configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Config is the contents of quiz.yaml.
type Config struct {
	Timer      TimerConfig           `yaml:"timer"`
	Difficulty DifficultyPreset      `yaml:"difficulty"`
	Modes      map[string]ModeConfig `yaml:"modes"`
}

// TimerConfig controls the per-attempt countdown.
type TimerConfig struct {
	Enabled bool `yaml:"enabled"`
	Seconds int  `yaml:"seconds"` // default for every mode
}

// ModeConfig overrides the budgets of one mode. Zero values mean "use the
// mode's default".
type ModeConfig struct {
	Attempts      int   `yaml:"attempts"`
	Items         int   `yaml:"items"`
	Options       int   `yaml:"options"`
	Seconds       int   `yaml:"seconds"`
	RetryOnExpiry *bool `yaml:"retry_on_expiry"`
}

// Retry reports whether expiry should cost an attempt instead of ending
// the round.
func (m ModeConfig) Retry() bool {
	return m.RetryOnExpiry != nil && *m.RetryOnExpiry
}

// Bool returns a pointer to b, for filling optional fields.
func Bool(b bool) *bool {
	return &b
}

// Resolve returns the effective settings for mode id: the configured entry,
// with unset fields taken from def, then adjusted for the difficulty preset.
func (c Config) Resolve(id string, def ModeConfig) ModeConfig {
	mc := c.Modes[id]

	if mc.Attempts <= 0 {
		mc.Attempts = def.Attempts
	}
	if mc.Items <= 0 {
		mc.Items = def.Items
	}
	if mc.Options <= 0 {
		mc.Options = def.Options
	}
	if mc.Seconds <= 0 {
		mc.Seconds = c.Timer.Seconds
	}
	if mc.Seconds <= 0 {
		mc.Seconds = def.Seconds
	}
	if mc.RetryOnExpiry == nil {
		mc.RetryOnExpiry = def.RetryOnExpiry
	}

	return ApplyPreset(mc, c.Difficulty)
}

// Validate reports configuration values that cannot produce a playable round.
func (c Config) Validate() error {
	var errs []error

	if c.Timer.Seconds < 0 {
		errs = append(errs, fmt.Errorf("timer.seconds must not be negative, got %d", c.Timer.Seconds))
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	for id, mc := range c.Modes {
		if mc.Attempts < 0 {
			errs = append(errs, fmt.Errorf("modes.%s.attempts must not be negative, got %d", id, mc.Attempts))
		}
		if mc.Items < 0 || mc.Items > MaxItems {
			errs = append(errs, fmt.Errorf("modes.%s.items must be between 0 and %d, got %d", id, MaxItems, mc.Items))
		}
		if mc.Options < 0 || mc.Options == 1 || mc.Options > MaxItems {
			errs = append(errs, fmt.Errorf("modes.%s.options must be 0 or between 2 and %d, got %d", id, MaxItems, mc.Options))
		}
		if mc.Seconds < 0 {
			errs = append(errs, fmt.Errorf("modes.%s.seconds must not be negative, got %d", id, mc.Seconds))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// MaxItems bounds the number of questions or options on one screen.
const MaxItems = 6
