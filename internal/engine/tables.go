package engine

import "sync"

const tableSize = 1 << 16

// moveTables holds, for every 16-bit row value, the XOR delta of that row
// moved in each direction and the row's score.
//
// The up and down entries are already spread into column shape, so they are
// consumed against a transposed board and shifted by a nybble offset instead
// of a row offset.
type moveTables struct {
	left   [tableSize]uint64
	right  [tableSize]uint64
	up     [tableSize]uint64
	down   [tableSize]uint64
	scores [tableSize]uint64
}

// tables is built on first use and never written again.
var tables = sync.OnceValue(buildTables)

// Warm builds the move tables now instead of on the first move.
func Warm() {
	tables()
}

func buildTables() *moveTables {
	t := new(moveTables)

	for row := uint64(0); row < tableSize; row++ {
		line := [BoardSize]uint64{
			row & 0xF,
			(row >> 4) & 0xF,
			(row >> 8) & 0xF,
			(row >> 12) & 0xF,
		}

		t.scores[row] = rowScore(line)

		slideLine(&line)

		result := line[0] | line[1]<<4 | line[2]<<8 | line[3]<<12

		// The slide runs toward cell 0, which is the right-hand side of a
		// displayed row and the bottom of a transposed column. Mirroring row
		// and result gives the opposite direction from the same pass.
		revRow := reverseRow(row)
		revResult := reverseRow(result)

		t.right[row] = row ^ result
		t.left[revRow] = revRow ^ revResult
		t.up[revRow] = columnFrom(revRow) ^ columnFrom(revResult)
		t.down[row] = columnFrom(row) ^ columnFrom(result)
	}

	return t
}

// rowScore sums (t-1) * 2^(t+1) over every tile of power t >= 2.
func rowScore(line [BoardSize]uint64) uint64 {
	var s uint64
	for _, tile := range line {
		if tile > 1 {
			s += (tile - 1) * (2 << tile)
		}
	}
	return s
}

// slideLine compacts the line toward index 0, merging equal neighbours once.
func slideLine(line *[BoardSize]uint64) {
	for i := 0; i < BoardSize-1; {
		j := i + 1
		for j < BoardSize && line[j] == 0 {
			j++
		}
		if j == BoardSize {
			break
		}

		switch {
		case line[i] == 0:
			// pull the candidate in and look at the same target again
			line[i] = line[j]
			line[j] = 0
			continue
		case line[i] == line[j] && line[i] != MaxPower:
			line[i]++
			line[j] = 0
		}
		i++
	}
}
