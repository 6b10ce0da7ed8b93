// Package raycast marches rays through a world.Grid.
//
// Rays advance in fixed linear steps rather than cell-to-cell (DDA), so the
// cost of a cast is maxDistance/Step and hit points are only accurate to one
// step. The face orientation reported with a hit is an approximation that can
// be wrong near cell corners; it is good enough for texture selection and
// shading but nothing that depends on exact geometry should rely on it.
package raycast

import (
	"math"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
)

// Step is the distance, in world units, a ray advances per iteration.
const Step = 4.0

// Hit describes the first blocking cell a ray reached.
type Hit struct {
	Distance float64   // distance travelled, a multiple of Step
	Point    geom.Vec2 // world position of the sample that hit
	Col, Row int       // the blocking cell
	Vertical bool      // hit face runs north-south
}

// Cast marches a ray from origin along angle until it enters a blocking cell,
// leaves the grid, or has travelled maxDistance. The second result is false
// when nothing was hit. Cast only reads the grid and is safe to call from
// several goroutines at once.
func Cast(grid *world.Grid, cellSize float64, origin geom.Vec2, angle, maxDistance float64) (Hit, bool) {
	step := geom.FromAngle(angle).Scale(Step)
	p := origin
	traveled := 0.0

	for traveled < maxDistance {
		p = p.Add(step)
		traveled += Step

		col, row := world.CellAt(p, cellSize)
		if !grid.InBounds(col, row) {
			return Hit{}, false
		}
		if !world.IsBlocking(grid.At(col, row)) {
			continue
		}

		// Whichever edge offset is smaller decides the face. Cheap, and
		// misclassifies near corners.
		left := math.Abs(p.X - float64(col)*cellSize)
		top := math.Abs(p.Y - float64(row)*cellSize)
		return Hit{
			Distance: traveled,
			Point:    p,
			Col:      col,
			Row:      row,
			Vertical: left < top,
		}, true
	}
	return Hit{}, false
}

// LineOfSight reports whether a ray from one point reaches the other without
// hitting a blocking cell.
func LineOfSight(grid *world.Grid, cellSize float64, from, to geom.Vec2) bool {
	d := to.Sub(from)
	_, hit := Cast(grid, cellSize, from, d.Angle(), d.Len())
	return !hit
}
