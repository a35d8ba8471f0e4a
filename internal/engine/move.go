package engine

// MoveLeft slides every row toward the left column.
//
//	| 0 | 0 | 0 | 0 |      | 0 | 0 | 0 | 0 |
//	| 0 | 0 | 0 | 0 |  =>  | 0 | 0 | 0 | 0 |
//	| 0 | 0 | 0 | 0 |      | 0 | 0 | 0 | 0 |
//	| 2 | 2 | 1 | 1 |      | 3 | 2 | 0 | 0 |
func MoveLeft(b Board) Board {
	return applyRows(b, &tables().left)
}

// MoveRight slides every row toward the right column.
func MoveRight(b Board) Board {
	return applyRows(b, &tables().right)
}

// MoveUp slides every column toward the top row.
func MoveUp(b Board) Board {
	return applyColumns(b, &tables().up)
}

// MoveDown slides every column toward the bottom row.
func MoveDown(b Board) Board {
	return applyColumns(b, &tables().down)
}

// Move dispatches to the mover for dir. Unknown directions leave the board
// untouched.
func Move(b Board, dir Direction) Board {
	switch dir {
	case Left:
		return MoveLeft(b)
	case Right:
		return MoveRight(b)
	case Up:
		return MoveUp(b)
	case Down:
		return MoveDown(b)
	default:
		return b
	}
}

// CanMove reports whether any direction changes the board.
// A board for which this is false is over.
func CanMove(b Board) bool {
	for _, d := range Directions {
		if Move(b, d) != b {
			return true
		}
	}
	return false
}

func applyRows(b Board, table *[tableSize]uint64) Board {
	r := uint64(b)
	x := r
	x ^= table[r&RowMask]
	x ^= table[(r>>16)&RowMask] << 16
	x ^= table[(r>>32)&RowMask] << 32
	x ^= table[(r>>48)&RowMask] << 48
	return Board(x)
}

// applyColumns looks up the columns of b through its transpose; the column
// tables hold deltas already laid out as columns.
func applyColumns(b Board, table *[tableSize]uint64) Board {
	x := uint64(b)
	t := uint64(Transpose(b))
	x ^= table[t&RowMask]
	x ^= table[(t>>16)&RowMask] << 4
	x ^= table[(t>>32)&RowMask] << 8
	x ^= table[(t>>48)&RowMask] << 12
	return Board(x)
}

// Score returns the points accumulated to build the tiles on the board.
func Score(b Board) uint64 {
	return tableSum(b, &tables().scores)
}

// CountEmpty returns the number of empty cells.
func CountEmpty(b Board) uint32 {
	var n uint32
	for i := range BoardSize * BoardSize {
		if b.Cell(i) == 0 {
			n++
		}
	}
	return n
}

// tableSum adds up the entries of a per-row table for the four rows of b.
func tableSum(b Board, table *[tableSize]uint64) uint64 {
	x := uint64(b)
	return table[x&RowMask] +
		table[(x>>16)&RowMask] +
		table[(x>>32)&RowMask] +
		table[(x>>48)&RowMask]
}
