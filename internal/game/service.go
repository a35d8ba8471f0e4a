// Package game runs persistent 2048 games on top of the engine.
//
// The engine spawns a tile on every single-direction Execute, even when the
// move changed nothing. The service is the caller that enforces real-play
// rules: a move must change the board before a tile is spawned, and a board
// that no direction can change ends the game.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	// ErrIllegalMove is returned when a move leaves the board unchanged.
	ErrIllegalMove = errors.New("game: move does not change the board")
	// ErrGameOver is returned when playing a game that has ended.
	ErrGameOver = errors.New("game: game is over")
	// ErrExists is returned when creating a game with a taken ID.
	ErrExists = errors.New("game: game already exists")
)

// Store is the persistence the service needs. *storage.Store implements it.
type Store interface {
	CreateGame(rec storage.GameRecord) error
	SaveGame(rec storage.GameRecord) error
	Game(id uint32) (*storage.GameRecord, error)
	DeleteGame(id uint32) error
}

var _ Store = (*storage.Store)(nil)

// Service creates, plays and reports games held in a Store.
type Service struct {
	store   Store
	spawner engine.Spawner
	logger  *log.Logger
}

// NewService creates a service. A nil logger discards output.
func NewService(store Store, spawner engine.Spawner, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if spawner.Source == nil {
		spawner = engine.DefaultSpawner()
	}
	return &Service{store: store, spawner: spawner, logger: logger}
}

// Create starts game id from seed and stores it.
func (s *Service) Create(id, seed uint32) (Snapshot, error) {
	if _, err := s.store.Game(id); err == nil {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrExists, id)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return Snapshot{}, err
	}

	sess, err := engine.NewSession(seed, s.sessionOptions()...)
	if err != nil {
		return Snapshot{}, fmt.Errorf("game: cannot start game %d: %w", id, err)
	}

	rec := storage.GameRecord{
		ID:     id,
		Board:  uint64(sess.Board()),
		Seed:   seed,
		Status: storage.StatusActive,
	}
	if err := s.store.CreateGame(rec); err != nil {
		// another creator may have taken id since the lookup above
		if errors.Is(err, storage.ErrExists) {
			return Snapshot{}, fmt.Errorf("%w: %d", ErrExists, id)
		}
		return Snapshot{}, err
	}

	s.logger.Info("game created", "id", id, "seed", seed, "board", sess.Board().Hex())
	return snapshotOf(rec), nil
}

// Play commits one move to game id.
//
// The spawn for move n is drawn from seed+2+n, after the two seeds used by
// the opening tiles, so consecutive moves do not reuse the same draw.
func (s *Service) Play(id uint32, dir engine.Direction) (Snapshot, error) {
	rec, err := s.store.Game(id)
	if err != nil {
		return Snapshot{}, err
	}
	if rec.Status == storage.StatusEnded {
		return snapshotOf(*rec), ErrGameOver
	}

	board := engine.Board(rec.Board)
	if engine.Move(board, dir) == board {
		return snapshotOf(*rec), fmt.Errorf("%w: %s", ErrIllegalMove, dir)
	}

	sess := engine.RestoreSession(board, moveSeed(rec.Seed, rec.Moves), s.sessionOptions()...)
	next, err := sess.Execute(dir)
	if err != nil {
		return snapshotOf(*rec), fmt.Errorf("game: cannot play game %d: %w", id, err)
	}

	rec.Board = uint64(next)
	rec.Moves++
	if !engine.CanMove(next) {
		rec.Status = storage.StatusEnded
	}

	if err := s.store.SaveGame(*rec); err != nil {
		return Snapshot{}, err
	}

	snap := snapshotOf(*rec)
	s.logger.Debug("move played", "id", id, "dir", dir, "board", next.Hex(), "score", snap.Score)
	if snap.Status == storage.StatusEnded {
		s.logger.Info("game over", "id", id, "score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves)
	}
	return snap, nil
}

// Probe returns the board of game id after dirs without storing anything.
// A single direction includes the spawn the move would get.
func (s *Service) Probe(id uint32, dirs ...engine.Direction) (engine.Board, error) {
	rec, err := s.store.Game(id)
	if err != nil {
		return 0, err
	}
	sess := engine.RestoreSession(engine.Board(rec.Board), moveSeed(rec.Seed, rec.Moves), s.sessionOptions()...)
	return sess.Execute(dirs...)
}

// State reports game id.
func (s *Service) State(id uint32) (Snapshot, error) {
	rec, err := s.store.Game(id)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshotOf(*rec), nil
}

// Delete removes game id.
func (s *Service) Delete(id uint32) error {
	if err := s.store.DeleteGame(id); err != nil {
		return err
	}
	s.logger.Info("game deleted", "id", id)
	return nil
}

func (s *Service) sessionOptions() []engine.Option {
	return []engine.Option{engine.WithSpawner(s.spawner), engine.WithLogger(s.logger)}
}

// moveSeed derives the spawn seed of move n. Overflow wraps.
func moveSeed(seed uint32, n int) uint32 {
	return seed + 2 + uint32(n)
}
