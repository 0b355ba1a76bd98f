package seating

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seat-ca/internal/core"
)

// Grid is an immutable snapshot of a seat layout. The interior is rows x cols;
// a one-cell Floor ring surrounds it so neighbor lookups at the edge need no
// special casing.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid builds a padded grid from rows of cells. All rows must have the same
// non-zero length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedInputError{Reason: "no rows"}
	}
	width := len(rows[0])
	if width == 0 {
		return nil, &MalformedInputError{Line: 1, Reason: "empty row"}
	}
	g := newGrid(len(rows), width)
	for r, row := range rows {
		if len(row) != width {
			return nil, &MalformedInputError{
				Line:   r + 1,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), width),
			}
		}
		for c, cell := range row {
			if !cell.valid() {
				return nil, &MalformedInputError{
					Line:   r + 1,
					Column: c + 1,
					Reason: fmt.Sprintf("invalid cell value %d", uint8(cell)),
				}
			}
			g.set(r, c, cell)
		}
	}
	return g, nil
}

// Parse reads a layout written with '.', 'L' and '#', one line per row.
// Carriage returns and trailing blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		row := make([]Cell, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			cell, ok := ParseCell(ch)
			if !ok {
				return nil, &MalformedInputError{
					Line:   line,
					Column: col,
					Reason: fmt.Sprintf("unexpected character %q", ch),
				}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading seat layout: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return NewGrid(rows)
}

// ParseString is Parse over an in-memory layout.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on malformed input. It is meant
// for layouts embedded in source.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}

func newGrid(rows, cols int) *Grid {
	return &Grid{cells: core.NewPaddedByteGrid(cols, rows, 1)}
}

// Rows returns the interior height.
func (g *Grid) Rows() int { return g.cells.H }

// Cols returns the interior width.
func (g *Grid) Cols() int { return g.cells.W }

// At returns the cell at (row, col). Every coordinate outside the interior,
// however far, reads as Floor.
func (g *Grid) At(row, col int) Cell {
	return Cell(g.cells.At(col, row))
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells.Set(col, row, uint8(c))
}

// Equal reports whether both grids have the same dimensions and interior.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.cells.Equal(other.cells)
}

// Diff counts the interior cells that differ between g and other. Grids of
// different dimensions differ everywhere.
func (g *Grid) Diff(other *Grid) int {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return max(g.Rows()*g.Cols(), other.Rows()*other.Cols())
	}
	n := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) != other.At(r, c) {
				n++
			}
		}
	}
	return n
}

// Count returns the number of interior cells satisfying pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if pred(g.At(r, c)) {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.cells.Clone()}
}

// String renders the layout in its text form, one newline-terminated line per
// row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			sb.WriteRune(g.At(r, c).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CountOccupied returns the number of occupied seats in g.
func CountOccupied(g *Grid) int {
	return g.Count(Cell.IsOccupied)
}
