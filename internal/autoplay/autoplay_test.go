package autoplay

import (
	"context"
	"testing"

	"github.com/vovakirdan/t2048/internal/engine"
)

func TestRunPlaysToTheEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 4

	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, r := range results {
		if r.Seed != cfg.BaseSeed+uint32(i) {
			t.Errorf("result %d has seed %d, want %d", i, r.Seed, cfg.BaseSeed+uint32(i))
		}
		if !r.Stuck {
			t.Errorf("seed %d stopped after %d moves without being stuck", r.Seed, r.Moves)
		}
		if engine.CanMove(r.Board) {
			t.Errorf("seed %d final board %s can still move", r.Seed, r.Board.Hex())
		}
		if r.Score != engine.Score(r.Board) {
			t.Errorf("seed %d score %d, want %d", r.Seed, r.Score, engine.Score(r.Board))
		}
		if r.MaxTile < 4 {
			t.Errorf("seed %d reached only %d", r.Seed, r.MaxTile)
		}
	}
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 6
	cfg.Workers = 1
	serial, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	cfg.Workers = 6
	parallel, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("game %d: serial %+v, parallel %+v", i, serial[i], parallel[i])
		}
	}
}

func TestRunRespectsMoveBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 2
	cfg.MaxMoves = 5

	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for _, r := range results {
		if r.Moves != 5 {
			t.Errorf("seed %d played %d moves, want 5", r.Seed, r.Moves)
		}
		if r.Stuck {
			t.Errorf("seed %d reported stuck after 5 moves", r.Seed)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultConfig())
	if !IsCanceled(err) {
		t.Errorf("Run() with canceled context err = %v, want cancellation", err)
	}
}

func TestRunNoGames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 0
	results, err := Run(context.Background(), cfg)
	if err != nil || results != nil {
		t.Errorf("Run() with no games = %v, %v", results, err)
	}
}

func TestChoose(t *testing.T) {
	// a lone tile in the bottom-right corner cannot go down or right
	dir, ok := choose(0x1)
	if !ok || dir != engine.Left {
		t.Errorf("choose(0x1) = %s, %v; want left", dir, ok)
	}

	if _, ok := choose(0x1234_2341_3412_4123); ok {
		t.Error("choose on a stuck board should report no move")
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Result{
		{Score: 100, MaxTile: 64, Moves: 10},
		{Score: 300, MaxTile: 256, Moves: 30},
	})
	if sum.Games != 2 || sum.BestScore != 300 || sum.MeanScore != 200 || sum.MaxTile != 256 || sum.Moves != 40 {
		t.Errorf("Summarize() = %+v", sum)
	}
	if got := Summarize(nil); got.Games != 0 || got.MeanScore != 0 {
		t.Errorf("Summarize(nil) = %+v", got)
	}
}
