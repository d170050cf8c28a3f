package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flags/internal/platform/tui"
	"github.com/vovakirdan/tui-flags/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a quiz mode",
	Long: `Start playing the specified mode.

Controls:
  Enter          - Submit answer, or next round once it is over
  Tab/Shift+Tab  - Move between fields or options
  1-9            - Pick an option (flag mode)
  /              - Filter the country list
  Esc            - Back to the home screen
  Ctrl+C         - Quit

Difficulty options:
  easy   - More attempts, 20 second countdown
  normal - Mode defaults
  hard   - One attempt less, 5 second countdown

Examples:
  flags play country
  flags play hints --difficulty easy
  flags play flag --timer
  flags play advanced --config ./my-quiz.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'flags list' to see available modes.")
		os.Exit(1)
	}

	runSession(modeID)
}

// runSession runs the full-screen quiz, opening modeID directly when set.
func runSession(modeID string) {
	if err := playSession(modeID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playSession(modeID string) error {
	return withLogger(io.Discard, func(logger *log.Logger) error {
		env, err := loadEnv(logger)
		if err != nil {
			return err
		}

		width, height := terminalSize()
		return tui.Run(env, modeID, width, height)
	})
}
