package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Seconds per attempt forced by the easy and hard presets.
const (
	easySeconds = 20
	hardSeconds = 5
)

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts resolved mode settings for a difficulty preset.
func ApplyPreset(mc ModeConfig, preset DifficultyPreset) ModeConfig {
	switch preset {
	case DifficultyEasy:
		mc.Attempts += 2
		mc.Seconds = easySeconds
	case DifficultyHard:
		mc.Attempts--
		if mc.Attempts < 1 {
			mc.Attempts = 1
		}
		mc.Seconds = hardSeconds
	}
	return mc
}
