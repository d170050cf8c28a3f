package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flags/internal/config"
	"github.com/vovakirdan/tui-flags/internal/countries"
	"github.com/vovakirdan/tui-flags/internal/flagart"
	"github.com/vovakirdan/tui-flags/internal/platform/tui"
	"github.com/vovakirdan/tui-flags/internal/storage"
)

// newLogger builds the process logger. Full-screen commands must not write
// to the terminal, so without --log-file they get fallback instead.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flags",
		Level:           level,
	})
	return logger, closeFn, nil
}

// withLogger runs fn with the process logger and closes the log file
// afterwards, whatever fn returns.
func withLogger(fallback io.Writer, fn func(*log.Logger) error) error {
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	return fn(logger)
}

// loadEnv resolves config, country data and flag art from the global flags.
func loadEnv(logger *log.Logger) (tui.Env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Env{}, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return tui.Env{}, err
		}
		cfg.Difficulty = preset
	}
	if rootCmd.PersistentFlags().Changed("timer") {
		cfg.Timer.Enabled = flagTimer
	}

	pool, source, err := loadPool(logger)
	if err != nil {
		return tui.Env{}, err
	}

	logger.Debug("environment ready",
		"source", source,
		"countries", pool.Len(),
		"difficulty", cfg.Difficulty,
		"timer", cfg.Timer.Enabled,
	)

	return tui.Env{
		Pool:   pool,
		Art:    flagart.Default(),
		Config: cfg,
		Source: source,
		Seed:   flagSeed,
		Logger: logger,
	}, nil
}

// loadPool picks the country data: a stored pack, a file, or the bundled list.
// An unreadable pack database falls back to the bundled list, and the
// returned source label says so.
func loadPool(logger *log.Logger) (countries.Pool, string, error) {
	switch {
	case flagPack != "":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("pack database unavailable, playing all countries", "pack", flagPack, "error", err)
			return countries.Default(), "all countries (pack unavailable)", nil
		}
		defer store.Close()

		pool, err := store.LoadPack(flagPack)
		if err != nil {
			return countries.Pool{}, "", err
		}
		return pool, "pack " + flagPack, nil

	case flagDataPath != "":
		pool, err := countries.Load(expandHome(flagDataPath))
		if err != nil {
			return countries.Pool{}, "", err
		}
		return pool, filepath.Base(flagDataPath), nil

	default:
		return countries.Default(), "all countries", nil
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
