package seats

import (
	"fmt"
	"image/color"
	"os"

	"seat-ca/internal/core"
	"seat-ca/internal/seating"
)

// Display values written to Cells.
const (
	displayFloor    = 0
	displayEmpty    = 1
	displayOccupied = 2
)

var seatPalette = []color.RGBA{
	displayFloor:    {R: 24, G: 24, B: 32, A: 255},
	displayEmpty:    {R: 90, G: 170, B: 110, A: 255},
	displayOccupied: {R: 220, G: 80, B: 60, A: 255},
}

// Seats plays the seat layout automaton one generation per Step until it
// reaches its fixed point.
type Seats struct {
	cfg     Config
	loaded  *seating.Grid
	initial *seating.Grid
	cur     *seating.Grid

	generation int
	converged  bool

	display []uint8
	changed []bool
}

// New returns a simulation starting from layout. A nil layout falls back to a
// random one built from cfg.
func New(cfg Config, layout *seating.Grid) *Seats {
	s := &Seats{cfg: cfg, loaded: layout}
	s.Reset(cfg.Seed)
	return s
}

// NewFromConfig loads cfg.Input when set and builds the simulation.
func NewFromConfig(cfg Config) (*Seats, error) {
	if cfg.Input == "" {
		return New(cfg, nil), nil
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	layout, err := seating.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	return New(cfg, layout), nil
}

// Name returns the simulation identifier.
func (s *Seats) Name() string { return "seats" }

// Size reports the layout dimensions.
func (s *Seats) Size() core.Size { return core.Size{W: s.cur.Cols(), H: s.cur.Rows()} }

// Cells exposes the display buffer: 0 floor, 1 empty seat, 2 occupied seat.
func (s *Seats) Cells() []uint8 { return s.display }

// Palette maps display values to colors.
func (s *Seats) Palette() []color.RGBA { return seatPalette }

// Changed marks the cells that flipped during the last Step.
func (s *Seats) Changed() []bool { return s.changed }

// Grid returns the current generation.
func (s *Seats) Grid() *seating.Grid { return s.cur }

// Rule returns the active rule.
func (s *Seats) Rule() seating.Rule { return s.cfg.Rule }

// Generation counts the steps that changed the layout since the last reset.
func (s *Seats) Generation() int { return s.generation }

// Converged reports whether the current generation is a fixed point.
func (s *Seats) Converged() bool { return s.converged }

// Occupied returns the number of occupied seats in the current generation.
func (s *Seats) Occupied() int { return seating.CountOccupied(s.cur) }

// Reset restarts from the loaded layout. Without one, a fresh random layout is
// generated; seed 0 reuses the configured seed.
func (s *Seats) Reset(seed int64) {
	switch {
	case s.loaded != nil:
		s.initial = s.loaded
	default:
		if seed == 0 {
			seed = s.cfg.Seed
		}
		s.initial = seating.RandomLayout(s.cfg.Height, s.cfg.Width, s.cfg.FloorChance, seed)
	}
	s.restart()
}

// SetRule switches rule and restarts from the current initial layout so a
// run never mixes rules.
func (s *Seats) SetRule(rule seating.Rule) {
	s.cfg.Rule = rule
	s.restart()
}

func (s *Seats) restart() {
	s.cur = s.initial
	s.generation = 0
	s.converged = false
	total := s.cur.Rows() * s.cur.Cols()
	s.display = make([]uint8, total)
	s.changed = make([]bool, total)
	s.refresh(nil)
}

// Step advances one synchronous generation. Once the fixed point is reached
// further calls leave the layout untouched.
func (s *Seats) Step() {
	if s.converged {
		clear(s.changed)
		return
	}
	next := seating.Step(s.cur, s.cfg.Rule)
	if next.Equal(s.cur) {
		s.converged = true
		clear(s.changed)
		return
	}
	prev := s.cur
	s.cur = next
	s.generation++
	s.refresh(prev)
}

func (s *Seats) refresh(prev *seating.Grid) {
	cols := s.cur.Cols()
	for r := 0; r < s.cur.Rows(); r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			cell := s.cur.At(r, c)
			s.display[idx] = displayValue(cell)
			s.changed[idx] = prev != nil && prev.At(r, c) != cell
		}
	}
}

func displayValue(c seating.Cell) uint8 {
	switch c {
	case seating.EmptySeat:
		return displayEmpty
	case seating.OccupiedSeat:
		return displayOccupied
	}
	return displayFloor
}

// Parameters describes the run for the HUD.
func (s *Seats) Parameters() core.ParameterSnapshot {
	layout := []core.Parameter{
		core.StringParam("input", "Input", s.cfg.Input),
		core.IntParam("w", "Width", s.cur.Cols()),
		core.IntParam("h", "Height", s.cur.Rows()),
		core.IntParam("seats", "Seats", s.cur.Count(seating.Cell.IsSeat)),
	}
	if s.loaded == nil {
		layout[0].Value = "(random)"
		layout = append(layout, core.FloatParam("floor_chance", "Floor chance", s.cfg.FloorChance))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Layout", Params: layout},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.cfg.Rule.String()),
				core.IntParam("tolerance", "Tolerance", s.cfg.Rule.Tolerance()),
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("occupied", "Occupied", s.Occupied()),
				core.BoolParam("converged", "Converged", s.converged),
			},
		},
	}}
}

func init() {
	core.Register("seats", func(cfg map[string]string) (core.Sim, error) {
		s, err := NewFromConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
