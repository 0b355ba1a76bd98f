package seating

import "seat-ca/internal/core"

// RandomLayout generates a rows x cols layout where each cell is floor with
// probability floorChance and an empty seat otherwise. The same seed always
// yields the same layout.
func RandomLayout(rows, cols int, floorChance float64, seed int64) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	rng := core.NewRNG(seed)
	g := newGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !rng.Chance(floorChance) {
				g.set(r, c, EmptySeat)
			}
		}
	}
	return g
}
