package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoEmptyCell is returned when a tile is spawned on a full board.
var ErrNoEmptyCell = errors.New("engine: no empty cell to spawn into")

// Source draws a uniform integer in [lo, hi) determined by a seed string.
// The same (seed, lo, hi) must always give the same value.
type Source interface {
	Range(seed string, lo, hi uint32) uint32
}

// SpawnPolicy selects how the spawned tile power is drawn.
type SpawnPolicy string

const (
	// PolicyLegacy keeps the historical comparison against 10 on a draw from
	// [0, 10). The draw never reaches 10, so every spawned tile is a 2.
	PolicyLegacy SpawnPolicy = "legacy"
	// PolicyClassic spawns a 4 when the draw is 0 (10%) and a 2 otherwise.
	PolicyClassic SpawnPolicy = "classic"
)

// ParseSpawnPolicy validates a policy name.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch p := SpawnPolicy(s); p {
	case PolicyLegacy, PolicyClassic:
		return p, nil
	case "":
		return PolicyLegacy, nil
	}
	return "", fmt.Errorf("engine: unknown spawn policy %q", s)
}

// Spawner places new tiles on a board.
type Spawner struct {
	Source Source
	Policy SpawnPolicy
}

// SeedString is the seed encoding handed to the Source.
func SeedString(seed uint32) string {
	return strconv.FormatUint(uint64(seed), 10)
}

// Tile returns the power of the tile to spawn for seed.
func (s Spawner) Tile(seed uint32) uint64 {
	draw := s.Source.Range(SeedString(seed), 0, 10)
	switch s.Policy {
	case PolicyClassic:
		if draw == 0 {
			return 2
		}
	default:
		if draw == 10 {
			return 2
		}
	}
	return 1
}

// SpawnTile returns the delta that places one new tile in an empty cell of b.
// OR it into b to apply it.
func (s Spawner) SpawnTile(b Board, seed uint32) (Board, error) {
	empty := CountEmpty(b)
	if empty == 0 {
		return 0, ErrNoEmptyCell
	}

	idx := s.Source.Range(SeedString(seed), 0, empty)
	tile := s.Tile(seed)

	// walk to the idx-th empty nybble, counting from the least significant
	tmp := uint64(b)
	for {
		for tmp&0xF != 0 {
			tmp >>= 4
			tile <<= 4
		}
		if idx == 0 {
			break
		}
		idx--
		tmp >>= 4
		tile <<= 4
	}

	return Board(tile), nil
}
