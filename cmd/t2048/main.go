// t2048 plays 2048 on a bit-packed board and keeps games in a SQLite database.
//
// Usage:
//
//	t2048 new <id>              - Start a game
//	t2048 move <id> <dir>...    - Play one move, or probe a sequence
//	t2048 show <id>             - Show a stored game
//	t2048 delete <id>           - Delete a stored game
//	t2048 inspect <board>       - Report score, empty cells and moves of a board
//	t2048 autoplay              - Play many games concurrently
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--db <path>         - Database path (overrides the config)
//	--log-level <lvl>   - debug, info, warn, error (overrides the config)
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "t2048 - 2048 on a 64-bit board",
	Long: `t2048 runs the 2048 rules on a board packed into one 64-bit integer.

Available commands:
  new       - Start a game with an ID and a seed
  move      - Play a move (one direction) or probe several
  show      - Show a stored game
  delete    - Delete a stored game
  inspect   - Analyse a board given in hex
  autoplay  - Play many games concurrently

Examples:
  t2048 new 1 --seed 42
  t2048 move 1 left
  t2048 move 1 left up up
  t2048 inspect 0x0000_0000_0022_1100
  t2048 autoplay --games 16 --workers 8`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to games database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
}

// openService wires config, logger, storage and the game service.
// The returned close function releases the database.
func openService() (*game.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}

	svc := game.NewService(store, cfg.Spawner(), newLogger(cfg))
	return svc, func() { store.Close() }, nil
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q: %w", s, err)
	}
	return uint32(id), nil
}

func printSnapshot(snap game.Snapshot) {
	fmt.Printf("Game %d (%s)\n\n", snap.ID, snap.Status)
	fmt.Print(snap.Board)
	fmt.Println()
	fmt.Printf("  %-8s %s\n", "Board", snap.Board.Hex())
	fmt.Printf("  %-8s %d\n", "Score", snap.Score)
	fmt.Printf("  %-8s %d\n", "Max", snap.MaxTile)
	fmt.Printf("  %-8s %d\n", "Empty", snap.Empty)
	fmt.Printf("  %-8s %d\n", "Moves", snap.Moves)
}
