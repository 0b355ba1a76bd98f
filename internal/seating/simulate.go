package seating

import (
	"github.com/rs/zerolog"
)

// DefaultMaxIterations bounds a run when no budget is configured. Known
// layouts settle in well under a hundred generations.
const DefaultMaxIterations = 1000

// Options tunes a Simulator.
type Options struct {
	// MaxIterations is the number of steps allowed before giving up.
	MaxIterations int
	// Workers > 1 computes each step in parallel row bands.
	Workers int
}

// DefaultOptions returns single-threaded options with the default budget.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations, Workers: 1}
}

// Result is a converged run.
type Result struct {
	// Grid is the fixed point.
	Grid *Grid
	// Iterations counts every step applied, including the final one that
	// confirmed nothing changed.
	Iterations int
}

// Generations is the number of steps that changed the layout.
func (r Result) Generations() int { return r.Iterations - 1 }

// Occupied is the number of occupied seats at the fixed point.
func (r Result) Occupied() int { return CountOccupied(r.Grid) }

// Simulator runs one rule to its fixed point.
type Simulator struct {
	rule   Rule
	opts   Options
	logger *zerolog.Logger
}

// NewSimulator returns a Simulator for rule. A nil logger discards output.
func NewSimulator(rule Rule, opts Options, logger *zerolog.Logger) *Simulator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Simulator{rule: rule, opts: opts, logger: logger}
}

// Rule returns the rule the simulator applies.
func (s *Simulator) Rule() Rule { return s.rule }

// Run steps initial until two consecutive generations are equal. It fails
// with *NonConvergenceError when MaxIterations steps pass without that
// happening; a budget of zero or less fails before any step.
func (s *Simulator) Run(initial *Grid) (Result, error) {
	log := s.logger.With().
		Str("rule", s.rule.String()).
		Int("rows", initial.Rows()).
		Int("cols", initial.Cols()).
		Logger()

	cur := initial
	for i := 1; i <= s.opts.MaxIterations; i++ {
		next := StepParallel(cur, s.rule, s.opts.Workers)
		if next.Equal(cur) {
			res := Result{Grid: next, Iterations: i}
			log.Info().
				Int("iterations", i).
				Int("occupied", res.Occupied()).
				Msg("seat layout converged")
			return res, nil
		}
		if e := log.Debug(); e.Enabled() {
			e.Int("iteration", i).Int("changed", next.Diff(cur)).Msg("step")
		}
		cur = next
	}
	log.Warn().Int("max_iterations", s.opts.MaxIterations).Msg("iteration budget exhausted")
	return Result{}, &NonConvergenceError{MaxIterations: s.opts.MaxIterations}
}

// Simulate runs rule from initial to its fixed point within maxIterations
// steps and returns the fixed point.
func Simulate(initial *Grid, rule Rule, maxIterations int) (*Grid, error) {
	opts := DefaultOptions()
	opts.MaxIterations = maxIterations
	res, err := NewSimulator(rule, opts, nil).Run(initial)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}
