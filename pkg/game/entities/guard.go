package entities

import (
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
)

// GuardState is the outcome of the last guard update.
type GuardState int

const (
	GuardIdle     GuardState = iota // on top of the player
	GuardBlocked                    // a wall hides the player
	GuardPursuing                   // moving toward the player
)

func (s GuardState) String() string {
	switch s {
	case GuardIdle:
		return "idle"
	case GuardBlocked:
		return "blocked"
	case GuardPursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

// Guard is a pursuing agent. Once spawned it is independent of the grid
// cell it came from.
type Guard struct {
	Pos    geom.Vec2
	Kind   world.Cell // Guard1, Guard2 or anything else for the default speed
	Speed  float64
	Radius float64
	Jiggle float64 // sideways nudge per second when stuck
	State  GuardState
}

// GuardSpeed returns the pursuit speed for a guard kind.
func GuardSpeed(kind world.Cell, cfg config.Guards) float64 {
	switch kind {
	case world.Guard1:
		return cfg.Guard1Speed
	case world.Guard2:
		return cfg.Guard2Speed
	default:
		return cfg.DefaultSpeed
	}
}

// NewGuard creates a guard of the given kind at pos.
func NewGuard(pos geom.Vec2, kind world.Cell, cfg config.Guards) *Guard {
	return &Guard{
		Pos:    pos,
		Kind:   kind,
		Speed:  GuardSpeed(kind, cfg),
		Radius: cfg.Radius,
		Jiggle: cfg.JiggleRate,
		State:  GuardIdle,
	}
}
