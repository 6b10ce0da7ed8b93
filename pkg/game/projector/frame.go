// Package projector turns the grid and the actors into a frame description:
// wall slices, goal floor spans, billboard sprites and a minimap. Backends
// draw a Frame as they like; none of the perspective math lives in them.
package projector

import (
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/entities"
)

// View is the camera and screen setup for one projection.
type View struct {
	CellSize    float64
	Width       int
	Height      int
	FOV         float64
	Stride      int     // screen columns per ray
	MaxDistance float64 // ray length
	MaxSprites  int     // 0 means no cap
	MinimapCell int     // minimap pixels per grid cell, 0 for none
}

// ViewFromConfig builds a View from the configuration.
func ViewFromConfig(cfg config.Config) View {
	return View{
		CellSize:    cfg.Simulation.CellSize,
		Width:       cfg.Screen.Width,
		Height:      cfg.Screen.Height,
		FOV:         cfg.Camera.FOV,
		Stride:      cfg.Camera.RayStride,
		MaxDistance: cfg.Camera.MaxRayDistance,
		MaxSprites:  cfg.Render.MaxSprites,
		MinimapCell: cfg.Render.MinimapCell,
	}
}

// Texture names the images a backend needs.
type Texture int

const (
	WallA Texture = iota
	WallB
	FolderTex
	Guard1Tex
	Guard2Tex
)

func (t Texture) String() string {
	switch t {
	case WallA:
		return "wall-a"
	case WallB:
		return "wall-b"
	case FolderTex:
		return "folder"
	case Guard1Tex:
		return "guard1"
	case Guard2Tex:
		return "guard2"
	default:
		return "unknown"
	}
}

// Anim selects a sprite's idle animation.
type Anim int

const (
	AnimFolder Anim = iota
	AnimGuard
)

// WallSlice is one textured vertical strip of wall.
type WallSlice struct {
	X, Width int
	Top      float64
	Height   float64
	Texture  Texture
	U        float64 // horizontal texture coordinate in [0, 1)
	Tint     float64 // brightness multiplier in (0, 1]
	Distance float64 // perpendicular distance, world units
	Vertical bool
}

// FloorSpan is a horizontal run of goal floor on one scanline.
type FloorSpan struct {
	X, Y, Width int
}

// Sprite is a billboard to draw at (X, Y) top-left with a square size.
type Sprite struct {
	X, Y     float64
	Size     float64
	Texture  Texture
	Anim     Anim
	Distance float64
}

// MinimapTile is one grid cell on the minimap.
type MinimapTile struct {
	X, Y, Size float64
	Kind       world.Cell
}

// MinimapGuard is a guard marker centred on (X, Y).
type MinimapGuard struct {
	X, Y  float64
	Kind  world.Cell
	State entities.GuardState
}

// MinimapView is the overhead map in screen pixels.
type MinimapView struct {
	Panel  Rect
	Tiles  []MinimapTile
	Guards []MinimapGuard

	// Player arrow: tip and the two base corners.
	Tip, Left, Right geom.Vec2
	Player           geom.Vec2
	// FOV edge end points, lines start at Player.
	FOVLeft, FOVRight geom.Vec2
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Frame is everything a backend needs to draw one frame, in draw order:
// floor spans, walls, sprites (far to near), minimap.
type Frame struct {
	Width, Height int
	Floor         []FloorSpan
	Walls         []WallSlice
	Sprites       []Sprite
	Minimap       *MinimapView
}
