// Package engine implements the 2048 rules on a bit-packed 64-bit board.
//
// The board holds sixteen 4-bit cells. A cell stores the power of two of its
// tile (1 = 2, 2 = 4, ... 0xF = 32768) or zero when empty. Moves are applied
// with four lookups into precomputed per-row tables whose entries are XOR
// deltas, so a whole move costs four loads and four XORs.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// RowMask extracts one 16-bit row from a board.
const RowMask uint64 = 0xFFFF

// ColMask selects the lowest cell of every row, i.e. one column.
const ColMask uint64 = 0x000F_000F_000F_000F

// MaxPower is the largest representable cell value.
const MaxPower = 0xF

// Board is a 4x4 grid packed into 64 bits.
//
// Row 0 occupies bits 0-15 and is displayed at the bottom; within a row the
// least-significant nybble is the rightmost column. Written in hex the value
// therefore reads like the grid: 0xFEDC_BA98_7654_3210 has F in the top-left
// corner and 0 in the bottom-right one.
type Board uint64

// Transpose swaps rows and columns. It is its own inverse.
//
//	| F | E | D | C |       | F | B | 7 | 3 |
//	| B | A | 9 | 8 |   =>  | E | A | 6 | 2 |
//	| 7 | 6 | 5 | 4 |       | D | 9 | 5 | 1 |
//	| 3 | 2 | 1 | 0 |       | C | 8 | 4 | 0 |
func Transpose(b Board) Board {
	x := uint64(b)

	a1 := x & 0xF0F0_0F0F_F0F0_0F0F
	a2 := x & 0x0000_F0F0_0000_F0F0
	a3 := x & 0x0F0F_0000_0F0F_0000
	a := a1 | (a2 << 12) | (a3 >> 12)

	b1 := a & 0xFF00_FF00_00FF_00FF
	b2 := a & 0x00FF_00FF_0000_0000
	b3 := a & 0x0000_0000_FF00_FF00

	return Board(b1 | (b2 >> 24) | (b3 << 24))
}

// columnFrom spreads the four cells of a row into the lowest cell of each
// board row, turning a row value into column 0 of a board.
func columnFrom(row uint64) uint64 {
	return (row | (row << 12) | (row << 24) | (row << 36)) & ColMask
}

// reverseRow mirrors the four cells of a row.
func reverseRow(row uint64) uint64 {
	return (row>>12)&0x000F | (row>>4)&0x00F0 | (row<<4)&0x0F00 | (row<<12)&0xF000
}

// Row returns the 16-bit value of row i (0 = bottom).
func (b Board) Row(i int) uint64 {
	return (uint64(b) >> (16 * i)) & RowMask
}

// Cell returns the power stored at nybble position i (0 = bottom-right).
func (b Board) Cell(i int) uint8 {
	return uint8((uint64(b) >> (4 * i)) & 0xF)
}

// At returns the power at grid coordinates, y=0 being the top row and x=0 the
// leftmost column.
func (b Board) At(y, x int) uint8 {
	return b.Cell(gridIndex(y, x))
}

// MaxTile returns the displayed value of the largest tile, 0 on an empty board.
func (b Board) MaxTile() int {
	var top uint8
	for i := range BoardSize * BoardSize {
		if c := b.Cell(i); c > top {
			top = c
		}
	}
	return TileValue(top)
}

// Grid unpacks the board into displayed tile values.
func (b Board) Grid() [BoardSize][BoardSize]int {
	var g [BoardSize][BoardSize]int
	for y := range BoardSize {
		for x := range BoardSize {
			g[y][x] = TileValue(b.At(y, x))
		}
	}
	return g
}

// Hex formats the board as 16 hex digits.
func (b Board) Hex() string {
	return fmt.Sprintf("%016x", uint64(b))
}

// String draws the board as a grid of displayed values.
func (b Board) String() string {
	var sb strings.Builder
	for y := range BoardSize {
		for x := range BoardSize {
			v := TileValue(b.At(y, x))
			if v == 0 {
				sb.WriteString("|     .")
			} else {
				fmt.Fprintf(&sb, "|%6d", v)
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// FromGrid packs displayed tile values into a board.
// Values that are not powers of two are rejected.
func FromGrid(g [BoardSize][BoardSize]int) (Board, error) {
	var b Board
	for y := range BoardSize {
		for x := range BoardSize {
			p, err := PowerOf(g[y][x])
			if err != nil {
				return 0, fmt.Errorf("engine: cell (%d,%d): %w", y, x, err)
			}
			b |= Board(p) << (4 * gridIndex(y, x))
		}
	}
	return b, nil
}

// ParseBoard reads a hex board such as "0x0000_0000_0022_1100".
func ParseBoard(s string) (Board, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	v, err := strconv.ParseUint(clean, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("engine: invalid board %q: %w", s, err)
	}
	return Board(v), nil
}

// TileValue converts a cell power into its displayed value.
func TileValue(power uint8) int {
	if power == 0 {
		return 0
	}
	return 1 << power
}

// PowerOf converts a displayed value into a cell power.
func PowerOf(value int) (uint8, error) {
	if value == 0 {
		return 0, nil
	}
	for p := uint8(1); p <= MaxPower; p++ {
		if 1<<p == value {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%d is not a tile value", value)
}

func gridIndex(y, x int) int {
	return (BoardSize*BoardSize - 1) - (y*BoardSize + x)
}
