package seating

import "golang.org/x/sync/errgroup"

// Step computes the next generation of g under rule. Every cell is derived
// from g alone; g is never modified.
func Step(g *Grid, rule Rule) *Grid {
	next := newGrid(g.Rows(), g.Cols())
	stepRows(g, next, rule, 0, g.Rows())
	return next
}

// StepParallel is Step with the rows split into bands computed concurrently.
// The result is identical to Step.
func StepParallel(g *Grid, rule Rule, workers int) *Grid {
	if workers > g.Rows() {
		workers = g.Rows()
	}
	if workers <= 1 {
		return Step(g, rule)
	}
	next := newGrid(g.Rows(), g.Cols())
	band := (g.Rows() + workers - 1) / workers
	var eg errgroup.Group
	for start := 0; start < g.Rows(); start += band {
		start, end := start, min(start+band, g.Rows())
		eg.Go(func() error {
			stepRows(g, next, rule, start, end)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	_ = eg.Wait()
	return next
}

// stepRows writes rows [from, to) of the next generation into dst. Distinct
// row ranges touch disjoint parts of dst.
func stepRows(src, dst *Grid, rule Rule, from, to int) {
	for r := from; r < to; r++ {
		for c := 0; c < src.Cols(); c++ {
			cell := src.At(r, c)
			if cell != Floor {
				cell = rule.Next(src, r, c)
			}
			dst.set(r, c, cell)
		}
	}
}
