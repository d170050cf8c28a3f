package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the quiz on the home screen",
	Long: `Start the quiz in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Esc in a round returns to the home screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select mode
  T            - Toggle the countdown
  Q            - Quit

Examples:
  flags menu
  flags menu --timer
  flags menu --pack nordics`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runSession("")
}
