package seating

import (
	"fmt"
	"strings"
)

// Rule selects how a seat's neighborhood is gathered. The set is closed:
// Adjacent looks at the eight touching cells, Visible at the first seat seen
// along each of the eight directions.
type Rule uint8

const (
	Adjacent Rule = iota
	Visible
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rules lists every rule in declaration order.
func Rules() []Rule { return []Rule{Adjacent, Visible} }

// ParseRule accepts "adjacent" or "visible" in any case.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent":
		return Adjacent, nil
	case "visible":
		return Visible, nil
	}
	return 0, fmt.Errorf("unknown rule %q (want adjacent or visible)", s)
}

func (r Rule) String() string {
	switch r {
	case Adjacent:
		return "adjacent"
	case Visible:
		return "visible"
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// Tolerance is the number of occupied neighbors at which an occupied seat is
// vacated.
func (r Rule) Tolerance() int {
	switch r {
	case Adjacent:
		return 4
	case Visible:
		return 5
	}
	panic(fmt.Sprintf("seating: unknown rule %d", uint8(r)))
}

// OccupiedNeighbors counts the occupied neighbors of (row, col) under r.
func (r Rule) OccupiedNeighbors(g *Grid, row, col int) int {
	n := 0
	switch r {
	case Adjacent:
		for _, d := range directions {
			if g.At(row+d[0], col+d[1]) == OccupiedSeat {
				n++
			}
		}
	case Visible:
		for _, d := range directions {
			if g.firstSeat(row, col, d[0], d[1]) == OccupiedSeat {
				n++
			}
		}
	default:
		panic(fmt.Sprintf("seating: unknown rule %d", uint8(r)))
	}
	return n
}

// Next returns the state of (row, col) in the following generation.
func (r Rule) Next(g *Grid, row, col int) Cell {
	cur := g.At(row, col)
	switch cur {
	case EmptySeat:
		if r.OccupiedNeighbors(g, row, col) == 0 {
			return OccupiedSeat
		}
	case OccupiedSeat:
		if r.OccupiedNeighbors(g, row, col) >= r.Tolerance() {
			return EmptySeat
		}
	}
	return cur
}

// firstSeat walks from (row, col) in direction (dr, dc) and returns the first
// non-floor cell, or Floor once the walk leaves the grid.
func (g *Grid) firstSeat(row, col, dr, dc int) Cell {
	r, c := row+dr, col+dc
	for r >= 0 && c >= 0 && r < g.Rows() && c < g.Cols() {
		if cell := g.At(r, c); cell != Floor {
			return cell
		}
		r += dr
		c += dc
	}
	return Floor
}
