// Package state holds the mutable simulation state of one level. Every
// gameplay function receives it explicitly.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/entities"
)

// CellRef identifies a grid cell.
type CellRef struct {
	Col, Row int
}

// Game represents the state of the level being played
type Game struct {
	Grid   *world.Grid
	Source *world.Grid // the level as loaded, for restarts
	Config config.Config

	Player *entities.Player
	Guards []*entities.Guard

	FoldersCollected int
	Collected        mapset.Set[CellRef] // cells whose folder has been picked up
	FoldersTotal     int

	Elapsed float64 // simulated seconds since the level started

	Complete bool // the player reached a goal cell
	Caught   bool // a guard touched the player

	Messages []string
}

// NewGame creates the state for a level played on grid.
func NewGame(grid *world.Grid, cfg config.Config) *Game {
	return &Game{
		Grid:      grid,
		Source:    grid.Clone(),
		Config:    cfg,
		Collected: mapset.New[CellRef](),
		Messages:  make([]string, 0),
	}
}

// Over reports whether the level has ended either way.
func (g *Game) Over() bool {
	return g.Complete || g.Caught
}

// CellSize is the world size of one grid cell.
func (g *Game) CellSize() float64 {
	return g.Config.Simulation.CellSize
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
