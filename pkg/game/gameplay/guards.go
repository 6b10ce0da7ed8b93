package gameplay

import (
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/collision"
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/raycast"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
)

// UpdateGuard advances one guard toward the player. A guard stands still
// when it is on top of the player or a wall lies between them; otherwise it
// walks straight at the player, nudging sideways when it gets stuck.
func UpdateGuard(g *entities.Guard, player geom.Vec2, dt float64, grid *world.Grid, cellSize float64) entities.GuardState {
	prev := g.State
	g.State = guardStep(g, player, dt, grid, cellSize)
	if g.State != prev {
		log.WithFields(log.Fields{
			"kind": g.Kind,
			"from": prev,
			"to":   g.State,
		}).Trace("guard state")
	}
	return g.State
}

func guardStep(g *entities.Guard, player geom.Vec2, dt float64, grid *world.Grid, cellSize float64) entities.GuardState {
	to := player.Sub(g.Pos)
	dist := to.Len()
	if dist < 1 {
		return entities.GuardIdle
	}

	if _, hit := raycast.Cast(grid, cellSize, g.Pos, to.Angle(), dist); hit {
		return entities.GuardBlocked
	}

	vel := to.Scale(g.Speed * dt / dist)
	policy := collision.Policy{Jiggle: g.Jiggle * dt}
	g.Pos, _ = collision.Resolve(grid, cellSize, collision.Body{Pos: g.Pos, Radius: g.Radius}, vel, policy)
	return entities.GuardPursuing
}

// UpdateGuards runs every guard in order. Guards do not collide with each
// other.
func UpdateGuards(guards []*entities.Guard, player geom.Vec2, dt float64, grid *world.Grid, cellSize float64) {
	for _, g := range guards {
		UpdateGuard(g, player, dt, grid, cellSize)
	}
}
