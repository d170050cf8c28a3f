package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultConfig()

	if cfg.Timer != def.Timer {
		t.Errorf("timer = %+v, want %+v", cfg.Timer, def.Timer)
	}
	if len(cfg.Modes) != len(def.Modes) {
		t.Fatalf("got %d modes, want %d", len(cfg.Modes), len(def.Modes))
	}
	for id, want := range def.Modes {
		got, ok := cfg.Modes[id]
		if !ok {
			t.Errorf("mode %s missing from embedded defaults", id)
			continue
		}
		if got.Attempts != want.Attempts || got.Items != want.Items || got.Options != want.Options || got.Retry() != want.Retry() {
			t.Errorf("mode %s = %+v, want %+v", id, got, want)
		}
	}
}

func TestParseMergesWithDefaults(t *testing.T) {
	cfg, err := Parse([]byte("timer:\n  enabled: true\nmodes:\n  country:\n    attempts: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Timer.Enabled || cfg.Timer.Seconds != 10 {
		t.Errorf("timer = %+v", cfg.Timer)
	}
	if cfg.Modes["country"].Attempts != 5 {
		t.Errorf("country attempts = %d, want 5", cfg.Modes["country"].Attempts)
	}
	if cfg.Modes["flag"].Options != 3 {
		t.Error("untouched mode lost its defaults")
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("difficulty = %q, want normal", cfg.Difficulty)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative seconds", "timer:\n  seconds: -1\n", "timer.seconds"},
		{"bad difficulty", "difficulty: brutal\n", "unknown difficulty"},
		{"one option", "modes:\n  flag:\n    options: 1\n", "modes.flag.options"},
		{"too many items", "modes:\n  advanced:\n    items: 40\n", "modes.advanced.items"},
		{"not yaml", "timer: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	def := ModeConfig{Attempts: 3, Items: 1, Seconds: 10}

	got := cfg.Resolve("country", def)
	if got.Attempts != 3 || got.Items != 1 || got.Seconds != 10 || got.Retry() {
		t.Errorf("normal country = %+v", got)
	}

	hints := cfg.Resolve("hints", def)
	if !hints.Retry() {
		t.Error("hints should retry on expiry")
	}

	unknown := cfg.Resolve("nope", ModeConfig{Attempts: 4, Items: 2, Seconds: 7})
	if unknown.Attempts != 4 || unknown.Items != 2 || unknown.Seconds != 10 {
		t.Errorf("unknown mode should take def and global timer: %+v", unknown)
	}

	cfg.Timer.Seconds = 0
	if s := cfg.Resolve("nope", ModeConfig{Seconds: 7}).Seconds; s != 7 {
		t.Errorf("Seconds = %d, want fallback 7", s)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		attempts int
		seconds  int
	}{
		{DifficultyEasy, 5, 20},
		{DifficultyNormal, 3, 10},
		{DifficultyHard, 2, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Difficulty = tt.preset
			got := cfg.Resolve("country", ModeConfig{})
			if got.Attempts != tt.attempts || got.Seconds != tt.seconds {
				t.Errorf("got attempts=%d seconds=%d, want %d/%d", got.Attempts, got.Seconds, tt.attempts, tt.seconds)
			}
		})
	}

	// Hard never drops below one attempt.
	cfg := DefaultConfig()
	cfg.Difficulty = DifficultyHard
	if got := cfg.Resolve("flag", ModeConfig{}).Attempts; got != 1 {
		t.Errorf("hard flag attempts = %d, want 1", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) = %v", s, err)
		}
	}
	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  enabled: true\n  seconds: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Timer.Enabled || cfg.Timer.Seconds != 15 {
		t.Errorf("timer = %+v", cfg.Timer)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}
