// Package collision tests circular bodies against the blocking cells of a
// world.Grid and resolves movement by axis sliding.
package collision

import (
	"math"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
)

// Overlaps reports whether a circle at center with the given radius
// intersects any blocking cell. Only cells under the circle's bounding box
// are tested; walkable cells (guard markers included) are skipped.
func Overlaps(grid *world.Grid, cellSize float64, center geom.Vec2, radius float64) bool {
	minCol := int(math.Max(math.Floor((center.X-radius)/cellSize), 0))
	maxCol := int(math.Max(math.Floor((center.X+radius)/cellSize), 0))
	minRow := int(math.Max(math.Floor((center.Y-radius)/cellSize), 0))
	maxRow := int(math.Max(math.Floor((center.Y+radius)/cellSize), 0))

	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !grid.InBounds(col, row) {
				continue
			}
			if !world.IsBlocking(grid.At(col, row)) {
				continue
			}
			// Closest point of the cell rectangle to the circle centre
			x0, y0 := float64(col)*cellSize, float64(row)*cellSize
			cx := clamp(center.X, x0, x0+cellSize)
			cy := clamp(center.Y, y0, y0+cellSize)
			dx, dy := center.X-cx, center.Y-cy
			if dx*dx+dy*dy < r2 {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
