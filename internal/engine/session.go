package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/rng"
)

// DefaultSpawner uses the hashed seed source with the legacy policy.
func DefaultSpawner() Spawner {
	return Spawner{Source: rng.Hashed{}, Policy: PolicyLegacy}
}

// Session is a single game: a board and the seed its spawns are drawn from.
type Session struct {
	board   Board
	seed    uint32
	spawner Spawner
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used to report executed moves.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSpawner replaces the default spawner.
func WithSpawner(sp Spawner) Option {
	return func(s *Session) {
		if sp.Source != nil {
			s.spawner = sp
		}
	}
}

// NewSession starts a game from an empty board with two tiles spawned from
// seed and seed+1.
func NewSession(seed uint32, opts ...Option) (*Session, error) {
	s := RestoreSession(0, seed, opts...)

	for _, sd := range [...]uint32{seed, seed + 1} {
		tile, err := s.spawner.SpawnTile(s.board, sd)
		if err != nil {
			return nil, err
		}
		s.board |= tile
	}

	return s, nil
}

// RestoreSession wraps an existing board, e.g. one loaded from storage.
func RestoreSession(board Board, seed uint32, opts ...Option) *Session {
	s := &Session{
		board:   board,
		seed:    seed,
		spawner: DefaultSpawner(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the current board.
func (s *Session) Board() Board { return s.board }

// Seed returns the seed used for spawns.
func (s *Session) Seed() uint32 { return s.seed }

// SetBoard replaces the current board, typically with a result of Execute.
func (s *Session) SetBoard(b Board) { s.board = b }

// Reseed replaces the spawn seed.
func (s *Session) Reseed(seed uint32) { s.seed = seed }

// Execute applies dirs to the board in order and returns the result.
//
// A tile is spawned only when exactly one direction is given, so a single
// direction is a real move while longer sequences are look-ahead probes.
// The session board is left unchanged; callers commit with SetBoard.
// Spawning does not check that the move changed anything, callers that play
// for real must reject no-op moves first.
func (s *Session) Execute(dirs ...Direction) (Board, error) {
	b := s.board
	for _, d := range dirs {
		b = Move(b, d)
	}

	if len(dirs) == 1 {
		tile, err := s.spawner.SpawnTile(b, s.seed)
		if err != nil {
			return b, err
		}
		b |= tile
	}

	s.logger.Info("executed", "moves", len(dirs), "board", b.Hex())

	return b, nil
}
