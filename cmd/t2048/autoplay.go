package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/autoplay"
)

var (
	flagGames    int
	flagWorkers  int
	flagMaxMoves int
	flagBaseSeed uint32
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play many games concurrently",
	Long: `Play games with a fixed direction preference (down, left, right, up)
until no move changes the board. Game i uses seed base+i, so a run is
reproducible whatever the worker count.

Flags default to the autoplay section of the config.

Examples:
  t2048 autoplay
  t2048 autoplay --games 100 --workers 8 --seed 1000`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (default from config)")
	autoplayCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent games (default from config)")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Move budget per game (default from config)")
	autoplayCmd.Flags().Uint32Var(&flagBaseSeed, "seed", 0, "Seed of the first game (default from config)")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run := autoplay.Config{
		Games:    cfg.Autoplay.Games,
		Workers:  cfg.Autoplay.Workers,
		MaxMoves: cfg.Autoplay.MaxMoves,
		BaseSeed: cfg.Autoplay.BaseSeed,
		Spawner:  cfg.Spawner(),
		Logger:   newLogger(cfg),
	}
	if cmd.Flags().Changed("games") {
		run.Games = flagGames
	}
	if cmd.Flags().Changed("workers") {
		run.Workers = flagWorkers
	}
	if cmd.Flags().Changed("max-moves") {
		run.MaxMoves = flagMaxMoves
	}
	if cmd.Flags().Changed("seed") {
		run.BaseSeed = flagBaseSeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := autoplay.Run(ctx, run)
	if err != nil {
		stop()
		if autoplay.IsCanceled(err) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-10s  %-8s  %-7s  %-6s  %s\n", "Seed", "Score", "Max", "Moves", "Board")
	fmt.Printf("  %-10s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "---", "-----", "-----")
	for _, r := range results {
		fmt.Printf("  %-10d  %-8d  %-7d  %-6d  %s\n", r.Seed, r.Score, r.MaxTile, r.Moves, r.Board.Hex())
	}

	sum := autoplay.Summarize(results)
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Mean: %.1f  Max tile: %d  Moves: %d\n",
		sum.Games, sum.BestScore, sum.MeanScore, sum.MaxTile, sum.Moves)
}
