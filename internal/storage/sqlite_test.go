package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.CreateGame(GameRecord{ID: 1, Board: 0x11}); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	if _, err := store.Game(1); err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
}

func TestStoreCreateAndLoad(t *testing.T) {
	store := openTestStore(t)

	rec := GameRecord{ID: 7, Board: 0x0000_0000_0022_1100, Seed: 99}
	if err := store.CreateGame(rec); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}

	got, err := store.Game(7)
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if got.Board != rec.Board || got.Seed != rec.Seed {
		t.Errorf("Game() = board %x seed %d, want board %x seed %d", got.Board, got.Seed, rec.Board, rec.Seed)
	}
	if got.Status != StatusActive {
		t.Errorf("Status = %q, want active", got.Status)
	}
	if got.Moves != 0 {
		t.Errorf("Moves = %d, want 0", got.Moves)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreBoardRoundTripIsExact(t *testing.T) {
	store := openTestStore(t)

	boards := []uint64{
		0,
		1,
		0xFEDC_BA98_7654_3210,
		0xFFFF_FFFF_FFFF_FFFF,
		0x8000_0000_0000_0000,
	}
	for i, b := range boards {
		id := uint32(i + 1)
		if err := store.CreateGame(GameRecord{ID: id, Board: b, Seed: ^uint32(0)}); err != nil {
			t.Fatalf("CreateGame(%x) failed: %v", b, err)
		}
		got, err := store.Game(id)
		if err != nil {
			t.Fatalf("Game() failed: %v", err)
		}
		if got.Board != b {
			t.Errorf("board %016x came back as %016x", b, got.Board)
		}
		if got.Seed != ^uint32(0) {
			t.Errorf("seed came back as %d", got.Seed)
		}
	}
}

func TestStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if err := store.CreateGame(GameRecord{ID: 1}); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	if err := store.CreateGame(GameRecord{ID: 1}); !errors.Is(err, ErrExists) {
		t.Errorf("CreateGame() with a taken ID err = %v, want ErrExists", err)
	}
}

func TestStoreSaveGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.CreateGame(GameRecord{ID: 3, Board: 0x1, Seed: 5}); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}

	update := GameRecord{ID: 3, Board: 0x2100, Seed: 6, Status: StatusEnded, Moves: 12}
	if err := store.SaveGame(update); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.Game(3)
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if got.Board != 0x2100 || got.Seed != 6 || got.Status != StatusEnded || got.Moves != 12 {
		t.Errorf("Game() = %+v, want saved values", got)
	}
}

func TestStoreMissingGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Game(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Game(404) err = %v, want ErrNotFound", err)
	}
	if err := store.SaveGame(GameRecord{ID: 404}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SaveGame(404) err = %v, want ErrNotFound", err)
	}
	if err := store.DeleteGame(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteGame(404) err = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.CreateGame(GameRecord{ID: 9}); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	if err := store.DeleteGame(9); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if _, err := store.Game(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("Game() after delete err = %v, want ErrNotFound", err)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.CreateGame(GameRecord{ID: 2, Board: 0xABCD, Seed: 4}); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed on reopen: %v", err)
	}
	defer store2.Close()

	got, err := store2.Game(2)
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if got.Board != 0xABCD {
		t.Errorf("Board after reopen = %x, want abcd", got.Board)
	}
}
