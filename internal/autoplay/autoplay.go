// Package autoplay plays many independent games concurrently.
//
// Every game owns its session; the only shared state is the engine's
// read-only move tables.
package autoplay

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/t2048/internal/engine"
)

// Config sizes an autoplay run.
type Config struct {
	Games    int
	Workers  int
	MaxMoves int
	BaseSeed uint32
	Spawner  engine.Spawner
	Logger   *log.Logger
}

// DefaultConfig returns the default run settings.
func DefaultConfig() Config {
	return Config{
		Games:    8,
		Workers:  4,
		MaxMoves: 100000,
		BaseSeed: 1,
		Spawner:  engine.DefaultSpawner(),
	}
}

// Result is the outcome of one game.
type Result struct {
	Seed    uint32
	Board   engine.Board
	Score   uint64
	Moves   int
	MaxTile int
	Stuck   bool // false when MaxMoves stopped the game
}

// preference is the order in which the policy tries directions.
var preference = [...]engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}

// Run plays cfg.Games games, game i seeded with BaseSeed+i, on at most
// cfg.Workers goroutines. Results are in seed order.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Games <= 0 {
		return nil, nil
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine.Warm()

	results := make([]Result, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Games {
		seed := cfg.BaseSeed + uint32(i)
		g.Go(func() error {
			res, err := playOne(ctx, seed, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("game finished", "seed", seed, "score", res.Score, "moves", res.Moves, "max_tile", res.MaxTile)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := Summarize(results)
	logger.Info("autoplay done", "games", sum.Games, "best", sum.BestScore, "mean", sum.MeanScore, "max_tile", sum.MaxTile)
	return results, nil
}

// playOne plays a game until no direction changes the board or the move
// budget runs out.
func playOne(ctx context.Context, seed uint32, cfg Config) (Result, error) {
	sess, err := engine.NewSession(seed, engine.WithSpawner(cfg.Spawner))
	if err != nil {
		return Result{}, err
	}

	res := Result{Seed: seed}
	for res.Moves < cfg.MaxMoves {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		dir, ok := choose(sess.Board())
		if !ok {
			res.Stuck = true
			break
		}

		sess.Reseed(seed + 2 + uint32(res.Moves))
		next, err := sess.Execute(dir)
		if err != nil {
			return Result{}, err
		}
		sess.SetBoard(next)
		res.Moves++
	}

	b := sess.Board()
	res.Board = b
	res.Score = engine.Score(b)
	res.MaxTile = b.MaxTile()
	if !res.Stuck && !engine.CanMove(b) {
		res.Stuck = true
	}
	return res, nil
}

// choose returns the first preferred direction that changes b.
func choose(b engine.Board) (engine.Direction, bool) {
	for _, d := range preference {
		if engine.Move(b, d) != b {
			return d, true
		}
	}
	return 0, false
}

// Summary aggregates a run.
type Summary struct {
	Games     int
	BestScore uint64
	MeanScore float64
	MaxTile   int
	Moves     int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	var total uint64
	for _, r := range results {
		total += r.Score
		s.Moves += r.Moves
		s.BestScore = max(s.BestScore, r.Score)
		s.MaxTile = max(s.MaxTile, r.MaxTile)
	}
	s.MeanScore = float64(total) / float64(len(results))
	return s
}

// IsCanceled reports whether err came from a canceled or expired context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
