// flags is a terminal flag quiz.
//
// Usage:
//
//	flags list                 - List quiz modes
//	flags play <mode>          - Play a mode directly
//	flags menu                 - Start on the home screen
//	flags serve                - Start SSH server for remote play
//	flags import <file>        - Store a country list as a pack
//	flags packs                - List stored packs
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible draws
//	--config <path>       - Use a specific quiz.yaml
//	--difficulty <preset> - easy, normal or hard
//	--timer               - Enable the per-attempt countdown
//	--data <path>         - Play a country file instead of the bundled list
//	--pack <name>         - Play a stored pack
//	--db <path>           - Set pack database path (default: ~/.flags/packs.db)
//
// Every global flag can also be set from the environment or a .env file
// as FLAGS_<NAME>, e.g. FLAGS_DIFFICULTY=hard.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-flags/internal/modes"
)

// envPrefix is prepended to flag names to form environment variable names.
const envPrefix = "FLAGS_"

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagTimer      bool
	flagDataPath   string
	flagPack       string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flags",
	Short: "Flags - a flag quiz in your terminal",
	Long: `Flags is a terminal quiz about the flags of the world.

Available commands:
  list     - Show all quiz modes
  play     - Play a specific mode directly
  menu     - Interactive home screen
  serve    - Start SSH server for remote play
  import   - Store a country list as a named pack
  packs    - List or delete stored packs

Examples:
  flags list
  flags play country
  flags play hints --timer --difficulty hard
  flags menu --pack nordics
  flags serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadDotEnv(); err != nil {
			return err
		}
		return applyEnv(cmd.Root().PersistentFlags())
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom quiz.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagTimer, "timer", false, "Enable the per-attempt countdown")
	pf.StringVar(&flagDataPath, "data", "", "Path to a country list (JSON or YAML)")
	pf.StringVar(&flagPack, "pack", "", "Name of a stored pack to play")
	pf.StringVar(&flagDBPath, "db", "~/.flags/packs.db", "Path to pack database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal commands log nothing otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(packsCmd)
}

// loadDotEnv loads ./.env into the environment. A missing file is fine.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	return nil
}

// applyEnv fills every flag not given on the command line from FLAGS_<NAME>.
func applyEnv(fs *pflag.FlagSet) error {
	var errs []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		val, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}
