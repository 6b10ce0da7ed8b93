package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkoffice/pkg/game/state"
)

// ShowLevelObjectives logs what the player has to do on this level.
func ShowLevelObjectives(g *state.Game) {
	if g.FoldersTotal > 0 {
		logMessage(g, gotext.Get("There are %d folders on this floor.", g.FoldersTotal))
	}
	if len(g.Guards) > 0 {
		logMessage(g, gotext.Get("%d guards are on patrol. Stay out of sight.", len(g.Guards)))
	}
	logMessage(g, gotext.Get("Find the exit."))
}

// HUDLines returns the status text drawn over the view, top line first.
func HUDLines(g *state.Game) []string {
	lines := []string{gotext.Get("Folders: %d / %d", g.FoldersCollected, g.FoldersTotal)}
	switch {
	case g.Complete:
		lines = append(lines, gotext.Get("You made it out!"), gotext.Get("Press Enter to play again, Esc to quit."))
	case g.Caught:
		lines = append(lines, gotext.Get("A guard caught you."), gotext.Get("Press Enter to play again, Esc to quit."))
	}
	return lines
}
