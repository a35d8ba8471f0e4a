// Package storage provides SQLite-based persistence for game boards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite" // Pure Go SQLite driver
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when no game has the requested ID.
	ErrNotFound = errors.New("storage: game not found")
	// ErrExists is returned when creating a game with a taken ID.
	ErrExists = errors.New("storage: game already exists")
)

// Status is the lifecycle state of a stored game.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Store manages the SQLite database connection for game persistence.
type Store struct {
	db *sql.DB
}

// GameRecord is one stored game. Board is the packed 64-bit board exactly as
// the engine produces it.
type GameRecord struct {
	ID        uint32
	Board     uint64
	Seed      uint32
	Status    Status
	Moves     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		// Expand ~ to home directory
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		// Create parent directories
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			board INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_status ON games(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateGame inserts a new game. It fails if the ID is taken.
func (s *Store) CreateGame(rec GameRecord) error {
	if rec.Status == "" {
		rec.Status = StatusActive
	}
	_, err := s.db.Exec(
		"INSERT INTO games (id, board, seed, status, moves) VALUES (?, ?, ?, ?, ?)",
		int64(rec.ID), int64(rec.Board), int64(rec.Seed), string(rec.Status), rec.Moves,
	)
	if isConstraint(err) {
		return fmt.Errorf("%w: %d", ErrExists, rec.ID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot create game %d: %w", rec.ID, err)
	}
	return nil
}

// isConstraint reports whether err is a primary key or unique violation.
func isConstraint(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

// SaveGame overwrites the board, seed, status and move count of a game.
func (s *Store) SaveGame(rec GameRecord) error {
	res, err := s.db.Exec(
		`UPDATE games
		 SET board = ?, seed = ?, status = ?, moves = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		int64(rec.Board), int64(rec.Seed), string(rec.Status), rec.Moves, int64(rec.ID),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %d: %w", rec.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Game loads a game by ID. Returns ErrNotFound if it does not exist.
func (s *Store) Game(id uint32) (*GameRecord, error) {
	var (
		board, seed          int64
		status               string
		createdAt, updatedAt any
	)
	rec := GameRecord{ID: id}

	err := s.db.QueryRow(
		`SELECT board, seed, status, moves, created_at, updated_at
		 FROM games
		 WHERE id = ?`,
		int64(id),
	).Scan(&board, &seed, &status, &rec.Moves, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game %d: %w", id, err)
	}

	// bit-identical round trip of the unsigned values
	rec.Board = uint64(board)
	rec.Seed = uint32(seed)
	rec.Status = Status(status)
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)

	return &rec, nil
}

// DeleteGame removes a game. Returns ErrNotFound if it does not exist.
func (s *Store) DeleteGame(id uint32) error {
	res, err := s.db.Exec("DELETE FROM games WHERE id = ?", int64(id))
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
