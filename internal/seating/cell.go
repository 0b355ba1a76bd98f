package seating

// Cell is the state of one position in a seat layout.
type Cell uint8

const (
	Floor Cell = iota
	EmptySeat
	OccupiedSeat
)

// ParseCell maps the layout alphabet onto cells.
func ParseCell(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Floor, true
	case 'L':
		return EmptySeat, true
	case '#':
		return OccupiedSeat, true
	}
	return Floor, false
}

// Rune returns the layout character for c.
func (c Cell) Rune() rune {
	switch c {
	case EmptySeat:
		return 'L'
	case OccupiedSeat:
		return '#'
	}
	return '.'
}

func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case EmptySeat:
		return "empty"
	case OccupiedSeat:
		return "occupied"
	}
	return "invalid"
}

// IsSeat reports whether c is a seat, occupied or not.
func (c Cell) IsSeat() bool { return c == EmptySeat || c == OccupiedSeat }

// IsOccupied reports whether c is an occupied seat.
func (c Cell) IsOccupied() bool { return c == OccupiedSeat }

func (c Cell) valid() bool { return c <= OccupiedSeat }
