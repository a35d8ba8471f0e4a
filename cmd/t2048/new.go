package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/game"
)

var flagSeed uint32

var newCmd = &cobra.Command{
	Use:   "new <id>",
	Short: "Start a new game",
	Long: `Start a game under the given ID. The seed drives every tile spawn,
so the same seed and moves always replay the same game.

Examples:
  t2048 new 1
  t2048 new 7 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runNew,
}

func init() {
	newCmd.Flags().Uint32Var(&flagSeed, "seed", 1, "Seed for tile spawns")
}

func runNew(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	snap, err := svc.Create(id, flagSeed)
	if err != nil {
		closeStore()
		if errors.Is(err, game.ErrExists) {
			fmt.Fprintf(os.Stderr, "Error: game %d already exists\n", id)
			fmt.Fprintf(os.Stderr, "Run 't2048 delete %d' to remove it.\n", id)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	printSnapshot(snap)
}
