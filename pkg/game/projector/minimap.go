package projector

import (
	"math"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
)

// Minimap layout, pixels
const (
	minimapMargin  = 10
	minimapPad     = 6
	minimapTileGap = 1
)

// arrowSpread is the angle between the arrow tip and each base corner.
var arrowSpread = 140 * math.Pi / 180

// Minimap lays out the overhead map in the top-left corner of the screen.
// It returns nil when the view has no minimap.
func Minimap(grid *world.Grid, p *entities.Player, guards []*entities.Guard, v View) *MinimapView {
	if v.MinimapCell <= 0 {
		return nil
	}
	scale := float64(v.MinimapCell)
	origin := geom.V(minimapMargin+minimapPad, minimapMargin+minimapPad)
	toMap := func(pos geom.Vec2) geom.Vec2 {
		return origin.Add(pos.Scale(scale / v.CellSize))
	}

	m := &MinimapView{
		Panel: Rect{
			X: minimapMargin,
			Y: minimapMargin,
			W: float64(grid.Cols())*scale + 2*minimapPad,
			H: float64(grid.Rows())*scale + 2*minimapPad,
		},
		Tiles: make([]MinimapTile, 0, grid.Rows()*grid.Cols()),
	}

	if size := scale - 2*minimapTileGap; size > 0 {
		grid.ForEachCell(func(col, row int, c world.Cell) {
			m.Tiles = append(m.Tiles, MinimapTile{
				X:    origin.X + float64(col)*scale + minimapTileGap,
				Y:    origin.Y + float64(row)*scale + minimapTileGap,
				Size: size,
				Kind: c,
			})
		})
	}

	for _, g := range guards {
		at := toMap(g.Pos)
		m.Guards = append(m.Guards, MinimapGuard{X: at.X, Y: at.Y, Kind: g.Kind, State: g.State})
	}

	m.Player = toMap(p.Pos)
	arrow := scale * 0.7
	m.Tip = m.Player.Add(geom.FromAngle(p.Dir).Scale(arrow))
	m.Left = m.Player.Add(geom.FromAngle(p.Dir + arrowSpread).Scale(arrow * 0.7))
	m.Right = m.Player.Add(geom.FromAngle(p.Dir - arrowSpread).Scale(arrow * 0.7))

	fovLen := scale * 6
	m.FOVLeft = m.Player.Add(geom.FromAngle(p.Dir - v.FOV/2).Scale(fovLen))
	m.FOVRight = m.Player.Add(geom.FromAngle(p.Dir + v.FOV/2).Scale(fovLen))
	return m
}
