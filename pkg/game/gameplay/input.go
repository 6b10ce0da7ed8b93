package gameplay

import (
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/game/state"
)

// Command is what the host loop should do after a frame's meta input.
type Command int

const (
	CommandNone    Command = iota
	CommandQuit            // leave the game loop
	CommandDump            // write a frame dump
	CommandRestart         // the level was restarted
)

// ProcessIntent handles the non-movement part of an intent. Movement is
// applied by Tick. Exit is checked first so a quit request is never lost to
// another action in the same frame.
func ProcessIntent(g *state.Game, intent input.Intent) Command {
	if intent.Exit {
		log.Info("exit requested")
		return CommandQuit
	}
	if intent.Dump {
		return CommandDump
	}
	// Confirm on the end screen plays the level again.
	if intent.Confirm && g.Over() {
		ResetLevel(g)
		return CommandRestart
	}
	return CommandNone
}
