package seating

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	g, err := ParseString(sampleLayout)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	if g.Rows() != 10 || g.Cols() != 10 {
		t.Fatalf("dimensions = %dx%d, want 10x10", g.Rows(), g.Cols())
	}
	if got := g.String(); got != sampleLayout {
		t.Fatalf("String() mismatch:\n%s\nwant:\n%s", got, sampleLayout)
	}
}

func TestParseCellMapping(t *testing.T) {
	g := MustParse(".#L\n.#L")
	want := [][]Cell{
		{Floor, OccupiedSeat, EmptySeat},
		{Floor, OccupiedSeat, EmptySeat},
	}
	for r, row := range want {
		for c, cell := range row {
			if got := g.At(r, c); got != cell {
				t.Fatalf("At(%d,%d) = %v, want %v", r, c, got, cell)
			}
		}
	}
}

func TestParseToleratesLineEndings(t *testing.T) {
	g, err := ParseString("L.#\r\n#.L\r\n\n\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{name: "empty", input: ""},
		{name: "only blank lines", input: "\n\n"},
		{name: "ragged", input: "L.L\nL.\n", line: 2},
		{name: "blank line inside", input: "L.L\n\nL.L\n", line: 2},
		{name: "bad character", input: "L.L\nLxL\n", line: 2, column: 2},
		{name: "leading blank line", input: "\nL.L\n", line: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.input)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("err = %v, want ErrMalformedInput", err)
			}
			var merr *MalformedInputError
			if !errors.As(err, &merr) {
				t.Fatalf("err %T is not *MalformedInputError", err)
			}
			if merr.Line != tc.line || merr.Column != tc.column {
				t.Fatalf("position = %d:%d, want %d:%d", merr.Line, merr.Column, tc.line, tc.column)
			}
		})
	}
}

func TestNewGridRejectsInvalidCells(t *testing.T) {
	_, err := NewGrid([][]Cell{{Floor, Cell(7)}})
	var merr *MalformedInputError
	if !errors.As(err, &merr) || merr.Column != 2 {
		t.Fatalf("err = %v, want malformed input at column 2", err)
	}
	if _, err := NewGrid(nil); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("nil rows: err = %v, want ErrMalformedInput", err)
	}
}

func TestAtIsTotal(t *testing.T) {
	g := MustParse("##\n##")
	coords := [][2]int{
		{-1, -1}, {-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2},
		{-1000, 5}, {5, 1 << 20}, {math.MinInt32, math.MaxInt32},
	}
	for _, rc := range coords {
		if got := g.At(rc[0], rc[1]); got != Floor {
			t.Fatalf("At(%d,%d) = %v, want floor", rc[0], rc[1], got)
		}
	}
	if got := g.At(1, 1); got != OccupiedSeat {
		t.Fatalf("At(1,1) = %v, want occupied", got)
	}
}

func TestEqualAndDiff(t *testing.T) {
	a := MustParse(sampleLayout)
	b := MustParse(sampleLayout)
	if !a.Equal(b) || a.Diff(b) != 0 {
		t.Fatal("identical layouts must be equal")
	}
	c := MustParse(sampleAdjacentRound1)
	if a.Equal(c) {
		t.Fatal("different layouts reported equal")
	}
	// Round 1 occupies every seat of the sample.
	if got, want := a.Diff(c), a.Count(Cell.IsSeat); got != want {
		t.Fatalf("Diff = %d, want %d", got, want)
	}
	if MustParse("L.").Equal(MustParse("L.\nL.")) {
		t.Fatal("grids with different dimensions reported equal")
	}
	var nilGrid *Grid
	if a.Equal(nilGrid) || !nilGrid.Equal(nil) {
		t.Fatal("nil handling in Equal is wrong")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := MustParse("L.L")
	b := a.Clone()
	b.set(0, 0, OccupiedSeat)
	if a.At(0, 0) != EmptySeat {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestCountOccupied(t *testing.T) {
	if got := CountOccupied(MustParse(sampleAdjacentFinal)); got != 37 {
		t.Fatalf("CountOccupied = %d, want 37", got)
	}
	if got := CountOccupied(MustParse("...\n...\n...")); got != 0 {
		t.Fatalf("CountOccupied = %d, want 0", got)
	}
	g := MustParse(sampleLayout)
	if got := g.Count(func(c Cell) bool { return c == Floor }); got != strings.Count(sampleLayout, ".") {
		t.Fatalf("floor count = %d", got)
	}
}

func TestRandomLayoutDeterministic(t *testing.T) {
	a := RandomLayout(12, 9, 0.3, 42)
	b := RandomLayout(12, 9, 0.3, 42)
	if !a.Equal(b) {
		t.Fatal("same seed produced different layouts")
	}
	if a.Rows() != 12 || a.Cols() != 9 {
		t.Fatalf("dimensions = %dx%d, want 12x9", a.Rows(), a.Cols())
	}
	if CountOccupied(a) != 0 {
		t.Fatal("random layouts must start with every seat empty")
	}
	if got := RandomLayout(4, 4, 0, 1).Count(Cell.IsSeat); got != 16 {
		t.Fatalf("floorChance 0: %d seats, want 16", got)
	}
	if got := RandomLayout(4, 4, 1, 1).Count(Cell.IsSeat); got != 0 {
		t.Fatalf("floorChance 1: %d seats, want 0", got)
	}
}
