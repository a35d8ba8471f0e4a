package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/engine"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <board>",
	Short: "Analyse a board given in hex",
	Long: `Print a board with its score, empty cells, largest tile and transpose,
followed by the result of each of the four moves. The board is the 16 hex
digits of the packed value, top-left cell first; '_' separators and a
leading 0x are allowed.

Examples:
  t2048 inspect 0x0000_0000_0022_1100
  t2048 inspect 1234234134124123`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	b, err := engine.ParseBoard(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(b)
	fmt.Println()
	fmt.Printf("  %-10s %s\n", "Board", b.Hex())
	fmt.Printf("  %-10s %s\n", "Transpose", engine.Transpose(b).Hex())
	fmt.Printf("  %-10s %d\n", "Score", engine.Score(b))
	fmt.Printf("  %-10s %d\n", "Empty", engine.CountEmpty(b))
	fmt.Printf("  %-10s %d\n", "Max", b.MaxTile())
	fmt.Println()

	fmt.Printf("  %-6s  %-16s  %-8s  %s\n", "Move", "Board", "Score", "Legal")
	fmt.Printf("  %-6s  %-16s  %-8s  %s\n", "----", "-----", "-----", "-----")
	for _, d := range engine.Directions {
		next := engine.Move(b, d)
		fmt.Printf("  %-6s  %-16s  %-8d  %t\n", d, next.Hex(), engine.Score(next), next != b)
	}

	if !engine.CanMove(b) {
		fmt.Println()
		fmt.Println("No moves left.")
	}
}
