package projector

import (
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
	"darkoffice/pkg/game/state"
)

// Project builds the frame seen by the player. elapsed drives the sprite
// animations. Project only reads its arguments.
func Project(grid *world.Grid, p *entities.Player, guards []*entities.Guard, v View, elapsed float64) Frame {
	return Frame{
		Width:   v.Width,
		Height:  v.Height,
		Floor:   castFloor(grid, p, v),
		Walls:   castWalls(grid, p, v),
		Sprites: castSprites(grid, p, guards, v, elapsed),
		Minimap: Minimap(grid, p, guards, v),
	}
}

// ProjectGame is Project over a game state.
func ProjectGame(g *state.Game, v View) Frame {
	return Project(g.Grid, g.Player, g.Guards, v, g.Elapsed)
}
