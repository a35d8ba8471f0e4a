package game

import (
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Snapshot captures a stored game together with the values derived from its
// board.
type Snapshot struct {
	ID      uint32
	Board   engine.Board
	Seed    uint32
	Score   uint64
	Empty   uint32
	MaxTile int
	Moves   int
	Status  storage.Status
}

func snapshotOf(rec storage.GameRecord) Snapshot {
	b := engine.Board(rec.Board)
	return Snapshot{
		ID:      rec.ID,
		Board:   b,
		Seed:    rec.Seed,
		Score:   engine.Score(b),
		Empty:   engine.CountEmpty(b),
		MaxTile: b.MaxTile(),
		Moves:   rec.Moves,
		Status:  rec.Status,
	}
}
