package gameplay

import (
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
	"darkoffice/pkg/game/state"
)

// CollectFolder picks up the folder under the player, if any. The cell
// becomes Floor, so a second call on the same cell does nothing.
func CollectFolder(g *state.Game) bool {
	col, row := PlayerCell(g)
	if g.Grid.At(col, row) != world.Folder {
		return false
	}
	g.Grid.Set(col, row, world.Floor)
	g.FoldersCollected++
	g.Collected.Put(state.CellRef{Col: col, Row: row})

	log.WithFields(log.Fields{
		"col":   col,
		"row":   row,
		"total": g.FoldersCollected,
	}).Info("folder collected")
	logMessage(g, gotext.Get("Folder collected (%d of %d).", g.FoldersCollected, g.FoldersTotal))
	return true
}

// CheckGoal marks the level complete when the player stands on a goal cell.
func CheckGoal(g *state.Game) bool {
	col, row := PlayerCell(g)
	if g.Grid.At(col, row) != world.Goal {
		return false
	}
	g.Complete = true
	log.WithFields(log.Fields{
		"folders": g.FoldersCollected,
		"elapsed": g.Elapsed,
	}).Info("level complete")
	logMessage(g, gotext.Get("You made it out!"))
	return true
}

// CheckCaught ends the level when a guard that can see the player touches
// them.
func CheckCaught(g *state.Game) bool {
	for _, gd := range g.Guards {
		if gd.State == entities.GuardBlocked {
			continue
		}
		reach := gd.Radius + g.Player.Radius
		if gd.Pos.Sub(g.Player.Pos).LenSq() < reach*reach {
			g.Caught = true
			log.WithField("kind", gd.Kind).Info("caught by guard")
			logMessage(g, gotext.Get("A guard caught you."))
			return true
		}
	}
	return false
}
