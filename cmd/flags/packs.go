package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flags/internal/storage"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List stored packs",
	Long: `Shows the country packs stored in the pack database.

Examples:
  flags packs
  flags packs delete europe
  flags packs --db ./packs.db`,
	Args: cobra.NoArgs,
	Run:  runPacks,
}

var packsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPacksDelete,
}

func init() {
	packsCmd.AddCommand(packsDeleteCmd)
}

func runPacks(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	packs, err := store.Packs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(packs) == 0 {
		fmt.Println("No packs stored. Add one with 'flags import <file>'.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %9s  %s\n", maxNameLen, "Name", "Countries", "Created")
	fmt.Printf("  %-*s  %9s  %s\n", maxNameLen, "----", "---------", "-------")
	for _, p := range packs {
		created := "-"
		if !p.CreatedAt.IsZero() {
			created = p.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %9d  %s\n", maxNameLen, p.Name, p.Count, created)
	}
}

func runPacksDelete(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeletePack(args[0]); err != nil {
		if errors.Is(err, storage.ErrPackNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no pack named %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Deleted pack %q.\n", args[0])
}
