// Package entities contains the actors of the office: the player and the
// guards that chase them. They carry poses in world units and are moved by
// the gameplay package.
package entities

import (
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/game/config"
)

// Player is the first-person viewer.
type Player struct {
	Pos           geom.Vec2
	Dir           float64 // facing, radians
	Speed         float64 // world units per second
	RotationSpeed float64 // radians per second
	Radius        float64
	Sensitivity   float64 // radians per pixel of mouse drag
}

// NewPlayer creates a player at pos facing east.
func NewPlayer(pos geom.Vec2, cfg config.Player, cam config.Camera) *Player {
	return &Player{
		Pos:           pos,
		Speed:         cfg.Speed,
		RotationSpeed: cfg.RotationSpeed,
		Radius:        cfg.Radius,
		Sensitivity:   cam.MouseSensitivity,
	}
}

// Facing returns the unit vector the player looks along.
func (p *Player) Facing() geom.Vec2 {
	return geom.FromAngle(p.Dir)
}
