package config

import (
	_ "embed"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultConfig returns the hardcoded quiz configuration. It matches the
// embedded defaults/quiz.yaml.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			Enabled: false,
			Seconds: 10,
		},
		Difficulty: DifficultyNormal,
		Modes: map[string]ModeConfig{
			"country": {
				Attempts: 3,
				Items:    1,
			},
			"hints": {
				Attempts:      3,
				Items:         1,
				RetryOnExpiry: Bool(true),
			},
			"flag": {
				Attempts: 1,
				Options:  3,
			},
			"advanced": {
				Attempts:      3,
				Items:         3,
				RetryOnExpiry: Bool(true),
			},
		},
	}
}

// DefaultYAML returns the embedded default quiz.yaml.
func DefaultYAML() []byte {
	return defaultQuizYAML
}
