package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/storage"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <direction>...",
	Short: "Play a move or probe a sequence",
	Long: `With one direction, play it: the board slides, a tile spawns and the
game is saved. With several, print where the sequence would lead without
spawning tiles or saving anything.

Directions: left (l, a), right (r, d), up (u, w), down (s)

Examples:
  t2048 move 1 left
  t2048 move 1 up up right`,
	Args: cobra.MinimumNArgs(2),
	Run:  runMove,
}

func runMove(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dirs, err := engine.ParseDirections(args[1:])
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

	if len(dirs) > 1 {
		b, err := svc.Probe(id, dirs...)
		if err != nil {
			closeStore()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(b)
		fmt.Println()
		fmt.Printf("  %-8s %s\n", "Board", b.Hex())
		fmt.Printf("  %-8s %d\n", "Score", engine.Score(b))
		fmt.Printf("  %-8s %d\n", "Empty", engine.CountEmpty(b))
		return
	}

	snap, err := svc.Play(id, dirs[0])
	switch {
	case errors.Is(err, game.ErrIllegalMove):
		fmt.Printf("Moving %s does not change the board.\n", dirs[0])
		return
	case errors.Is(err, game.ErrGameOver):
		fmt.Printf("Game %d is over.\n", id)
		return
	case err != nil:
		closeStore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSnapshot(snap)
	if snap.Status == storage.StatusEnded {
		fmt.Println()
		fmt.Println("No moves left. Game over!")
	}
}
