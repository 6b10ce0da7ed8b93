package projector

import (
	"math"

	"darkoffice/pkg/engine/raycast"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
)

// minCos keeps the fisheye correction away from zero at extreme angles.
const minCos = 1e-4

// horizontalTint darkens walls hit on a horizontal face.
const horizontalTint = 200.0 / 255.0

// WallHeight is the on-screen height of a wall hit rawDistance away along a
// ray angleOffset radians off the view direction, clamped to the screen.
func WallHeight(cellSize float64, screenH int, rawDistance, angleOffset float64) float64 {
	corrected := rawDistance * math.Max(math.Abs(math.Cos(angleOffset)), minCos)
	h := cellSize * float64(screenH) / corrected
	return math.Min(h, float64(screenH))
}

// castWalls emits one slice per stride columns. Columns whose ray escapes
// the grid or runs out of range get no slice.
func castWalls(grid *world.Grid, p *entities.Player, v View) []WallSlice {
	slices := make([]WallSlice, 0, v.Width/v.Stride+1)
	w, h := float64(v.Width), float64(v.Height)
	cs := v.CellSize

	for x := 0; x < v.Width; x += v.Stride {
		cameraX := 2*float64(x)/w - 1
		offset := cameraX * v.FOV / 2
		hit, ok := raycast.Cast(grid, cs, p.Pos, p.Dir+offset, v.MaxDistance)
		if !ok {
			continue
		}

		height := WallHeight(cs, v.Height, hit.Distance, offset)
		tex := WallA
		if (hit.Col+hit.Row)%2 != 0 {
			tex = WallB
		}
		along, tint := hit.Point.X, horizontalTint
		if hit.Vertical {
			along, tint = hit.Point.Y, 1
		}

		slices = append(slices, WallSlice{
			X:        x,
			Width:    min(v.Stride, v.Width-x),
			Top:      (h - height) / 2,
			Height:   height,
			Texture:  tex,
			U:        frac(along / cs),
			Tint:     tint,
			Distance: hit.Distance * math.Max(math.Abs(math.Cos(offset)), minCos),
			Vertical: hit.Vertical,
		})
	}
	return slices
}

// frac returns the fractional part of v in [0, 1), negatives included.
func frac(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}
