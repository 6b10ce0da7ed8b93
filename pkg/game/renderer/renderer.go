// Package renderer defines the presentation backend interface and the frame
// step the backends share.
package renderer

import (
	"image/color"
	"math"

	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/state"
)

// Palette shared by every backend
var (
	ColorSky      = color.RGBA{100, 150, 255, 255}
	ColorFloor    = color.RGBA{60, 60, 60, 255}
	ColorGoal     = color.RGBA{255, 203, 0, 255}
	ColorWallA    = color.RGBA{150, 140, 120, 255}
	ColorWallB    = color.RGBA{110, 120, 140, 255}
	ColorFolder   = color.RGBA{0, 228, 48, 255}
	ColorGuard1   = color.RGBA{230, 41, 55, 255}
	ColorGuard2   = color.RGBA{190, 33, 200, 255}
	ColorPlayer   = color.RGBA{0, 121, 241, 255}
	ColorText     = color.RGBA{255, 255, 255, 255}
	ColorPanel    = color.RGBA{0, 0, 0, 170}
	ColorFOVLine  = color.RGBA{255, 255, 255, 140}
	ColorMapWall  = color.RGBA{80, 80, 80, 220}
	ColorMapFloor = color.RGBA{130, 130, 130, 220}
)

// TextureColor is the base colour of a projector texture.
func TextureColor(t projector.Texture) color.RGBA {
	switch t {
	case projector.WallA:
		return ColorWallA
	case projector.WallB:
		return ColorWallB
	case projector.FolderTex:
		return ColorFolder
	case projector.Guard1Tex:
		return ColorGuard1
	case projector.Guard2Tex:
		return ColorGuard2
	default:
		return ColorText
	}
}

// MinimapColor is the minimap fill for a cell kind.
func MinimapColor(c world.Cell) color.RGBA {
	switch c {
	case world.Wall, world.Unknown:
		return ColorMapWall
	case world.Goal:
		return ColorGoal
	case world.Folder:
		return ColorFolder
	default:
		return ColorMapFloor
	}
}

// Shade scales a colour's RGB by f in [0, 1].
func Shade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Step runs one frame for a backend: meta input, the simulation tick and
// the projection. The returned command tells the backend to quit or to
// write a frame dump.
func Step(g *state.Game, in input.Intent, dt float64, v projector.View) (projector.Frame, gameplay.Command) {
	cmd := gameplay.ProcessIntent(g, in)
	if cmd == gameplay.CommandQuit {
		return projector.Frame{}, cmd
	}
	gameplay.Tick(g, in, dt)
	return projector.ProjectGame(g, v), cmd
}
