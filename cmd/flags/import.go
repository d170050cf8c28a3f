package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flags/internal/countries"
	"github.com/vovakirdan/tui-flags/internal/storage"
)

var (
	flagImportName  string
	flagImportForce bool
)

// errPackExists is returned when an import would replace a stored pack.
var errPackExists = errors.New("pack already exists")

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a country list as a pack",
	Long: `Read a country list and store it in the pack database.

The file may be JSON or YAML, either a code to name mapping or a list
of {code, name} entries. The pack is named after the file unless --name
is given. An existing pack is only replaced with --force.

Examples:
  flags import ./nordics.yaml              # Stored as "nordics"
  flags import ./eu.json --name europe
  flags import ./eu.json --name europe --force
  flags play country --pack europe`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportName, "name", "", "Pack name (default: file name without extension)")
	importCmd.Flags().BoolVar(&flagImportForce, "force", false, "Replace an existing pack with the same name")
}

func runImport(_ *cobra.Command, args []string) {
	name, count, err := importPack(flagDBPath, expandHome(args[0]), flagImportName, flagImportForce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errPackExists) {
			fmt.Fprintln(os.Stderr, "Use --force to replace it, or --name to pick another name.")
		}
		os.Exit(1)
	}

	fmt.Printf("Stored pack %q with %d countries.\n", name, count)
	fmt.Printf("Play it with 'flags menu --pack %s'.\n", name)
}

// importPack stores the country list at path in the database at dbPath.
// An empty name falls back to the file name. It returns the pack name and
// the number of countries stored.
func importPack(dbPath, path, name string, force bool) (string, int, error) {
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	pool, err := countries.Load(path)
	if err != nil {
		return "", 0, err
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return "", 0, err
	}
	defer store.Close()

	if !force {
		exists, err := store.HasPack(name)
		if err != nil {
			return "", 0, err
		}
		if exists {
			return "", 0, fmt.Errorf("%w: %q", errPackExists, name)
		}
	}

	if _, err := store.SavePack(name, pool); err != nil {
		return "", 0, err
	}
	return name, pool.Len(), nil
}
