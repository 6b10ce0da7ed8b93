// Package gameplay provides the per-frame game logic: player and guard
// movement, folder pickup, level start and the simulation tick.
package gameplay

import (
	"math"

	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/collision"
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
	"darkoffice/pkg/game/state"
)

// UpdatePlayer applies one frame of input to the player: rotation first,
// then translation resolved against the grid. Forward and strafe vectors are
// summed without normalisation.
func UpdatePlayer(p *entities.Player, in input.Intent, dt float64, grid *world.Grid, cellSize float64) collision.Outcome {
	if in.TurnLeft {
		p.Dir += p.RotationSpeed * dt
	}
	if in.TurnRight {
		p.Dir -= p.RotationSpeed * dt
	}
	if in.Dragging && in.YawDelta != 0 {
		p.Dir += -in.YawDelta * p.Sensitivity
	}

	step := p.Speed * dt
	var delta geom.Vec2
	if in.Forward {
		delta = delta.Add(geom.FromAngle(p.Dir).Scale(step))
	}
	if in.Back {
		delta = delta.Sub(geom.FromAngle(p.Dir).Scale(step))
	}
	if in.Left {
		delta = delta.Add(geom.FromAngle(p.Dir - math.Pi/2).Scale(step))
	}
	if in.Right {
		delta = delta.Add(geom.FromAngle(p.Dir + math.Pi/2).Scale(step))
	}

	next, out := collision.Resolve(grid, cellSize, collision.Body{Pos: p.Pos, Radius: p.Radius}, delta, collision.Policy{})
	if out == collision.Stuck {
		log.WithField("pos", p.Pos).Trace("player blocked")
	}
	p.Pos = next
	return out
}

// PlayerCell returns the grid cell under the player.
func PlayerCell(g *state.Game) (col, row int) {
	return world.CellAt(g.Player.Pos, g.CellSize())
}

func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
