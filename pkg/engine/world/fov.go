package world

import (
	"math"

	"darkoffice/pkg/engine/geom"
)

// wallSamplesPerCell is how many points per cell length HasWallBetween tests.
const wallSamplesPerCell = 4

// HasWallBetween reports whether a blocking cell lies on the segment from
// one point to another. The segment is sampled every cellSize/4, excluding
// both endpoints, so it is a coarse visibility test: it can miss a corner
// clipped at a shallow angle. Samples outside the grid are ignored.
func HasWallBetween(grid *Grid, cellSize float64, from, to geom.Vec2) bool {
	if grid == nil {
		return false
	}
	d := to.Sub(from)
	steps := int(math.Max(d.Len()/(cellSize/wallSamplesPerCell), 1))

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		col, row := CellAt(from.Add(d.Scale(t)), cellSize)
		if !grid.InBounds(col, row) {
			continue
		}
		if IsBlocking(grid.At(col, row)) {
			return true
		}
	}
	return false
}
