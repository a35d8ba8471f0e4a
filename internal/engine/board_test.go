package engine

import "testing"

func TestGridRoundTrip(t *testing.T) {
	grid := [BoardSize][BoardSize]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{0, 0, 0, 0},
	}

	b, err := FromGrid(grid)
	if err != nil {
		t.Fatalf("FromGrid() failed: %v", err)
	}
	if b != 0x1234_5678_9ABC_0000 {
		t.Errorf("FromGrid() = %s, want 123456789abc0000", b.Hex())
	}
	if got := b.Grid(); got != grid {
		t.Errorf("Grid() = %v, want %v", got, grid)
	}
}

func TestFromGridRejectsNonPowers(t *testing.T) {
	if _, err := FromGrid([BoardSize][BoardSize]int{{3}}); err == nil {
		t.Error("FromGrid should reject 3")
	}
	if _, err := FromGrid([BoardSize][BoardSize]int{{65536}}); err == nil {
		t.Error("FromGrid should reject values above the max tile")
	}
}

func TestParseBoard(t *testing.T) {
	tests := []struct {
		in      string
		want    Board
		wantErr bool
	}{
		{"0x0000_0000_0022_1100", 0x221100, false},
		{"FEDCBA9876543210", 0xFEDC_BA98_7654_3210, false},
		{" 0X1 ", 0x1, false},
		{"0xZZ", 0, true},
		{"0x1_0000_0000_0000_0000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBoard(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBoard(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBoard(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestRowAndCell(t *testing.T) {
	b := Board(0xFEDC_BA98_7654_3210)
	if got := b.Row(0); got != 0x3210 {
		t.Errorf("Row(0) = %04x, want 3210", got)
	}
	if got := b.Row(3); got != 0xFEDC {
		t.Errorf("Row(3) = %04x, want fedc", got)
	}
	if got := b.Cell(5); got != 5 {
		t.Errorf("Cell(5) = %d, want 5", got)
	}
	if got := b.At(0, 0); got != 0xF {
		t.Errorf("At(0,0) = %x, want f", got)
	}
	if got := b.At(3, 3); got != 0 {
		t.Errorf("At(3,3) = %x, want 0", got)
	}
}

func TestMaxTile(t *testing.T) {
	if got := Board(0).MaxTile(); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
	if got := Board(0x0000_0B00_0020_0001).MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestBoardString(t *testing.T) {
	want := "" +
		"|     .|     .|     .|     .|\n" +
		"|     .|     .|     .|     .|\n" +
		"|     .|     .|     8|     .|\n" +
		"|     4|     .|     .|     .|\n"
	if got := Board(0x0000_0000_0030_2000).String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"left": Left, "L": Left, "a": Left,
		"right": Right, "r": Right, "d": Right,
		"UP": Up, "u": Up, "w": Up,
		"down": Down, "s": Down,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown input")
	}
	if _, err := ParseDirections([]string{"left", "nope"}); err == nil {
		t.Error("ParseDirections should fail on any bad element")
	}
}

func TestColumnFromAndReverseRow(t *testing.T) {
	tests := []struct {
		row     uint64
		column  uint64
		reverse uint64
	}{
		{0x0000, 0x0000_0000_0000_0000, 0x0000},
		{0x4321, 0x0004_0003_0002_0001, 0x1234},
		{0xF00A, 0x000F_0000_0000_000A, 0xA00F},
	}

	for _, tt := range tests {
		if got := columnFrom(tt.row); got != tt.column {
			t.Errorf("columnFrom(%#04x) = %#016x, want %#016x", tt.row, got, tt.column)
		}
		if got := reverseRow(tt.row); got != tt.reverse {
			t.Errorf("reverseRow(%#04x) = %#04x, want %#04x", tt.row, got, tt.reverse)
		}
		if got := reverseRow(reverseRow(tt.row)); got != tt.row {
			t.Errorf("reverseRow twice on %#04x = %#04x", tt.row, got)
		}
	}
}
