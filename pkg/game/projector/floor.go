package projector

import (
	"math"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
)

// castFloor finds the goal cells visible on the floor. It walks every
// scanline below the horizon, sampling one point per stride columns, and
// merges neighbouring goal samples on a scanline into one span.
//
// Row distances are in cells and scaled by the cell size, so the floor lines
// up with the wall slices.
func castFloor(grid *world.Grid, p *entities.Player, v View) []FloorSpan {
	var spans []FloorSpan
	w := float64(v.Width)
	half := v.Height / 2
	posZ := float64(v.Height) / 2

	dir := geom.FromAngle(p.Dir)
	plane := dir.Perp().Scale(math.Tan(v.FOV / 2))
	ray0 := dir.Sub(plane)
	ray1 := dir.Add(plane)

	for y := half + 1; y < v.Height; y++ {
		rowDist := posZ / float64(y-half) * v.CellSize
		pt := p.Pos.Add(ray0.Scale(rowDist))
		step := ray1.Sub(ray0).Scale(rowDist * float64(v.Stride) / w)

		open := -1 // index into spans of the span being extended
		for x := 0; x < v.Width; x += v.Stride {
			col, row := world.CellAt(pt, v.CellSize)
			pt = pt.Add(step)

			if !grid.InBounds(col, row) || grid.At(col, row) != world.Goal {
				open = -1
				continue
			}
			width := min(v.Stride, v.Width-x)
			if open >= 0 {
				spans[open].Width += width
				continue
			}
			spans = append(spans, FloorSpan{X: x, Y: y, Width: width})
			open = len(spans) - 1
		}
	}
	return spans
}
