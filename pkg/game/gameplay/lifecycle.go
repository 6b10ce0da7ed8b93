package gameplay

import (
	"math"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/entities"
	"darkoffice/pkg/game/state"
)

// NewLevel builds the state for a freshly loaded grid: the player at the
// centre of the first walkable cell in row-major order, one guard per guard
// marker, counters at zero.
func NewLevel(grid *world.Grid, cfg config.Config) *state.Game {
	g := state.NewGame(grid, cfg)
	SetupLevel(g)
	return g
}

// SetupLevel (re)spawns the actors on g.Grid and resets the counters.
func SetupLevel(g *state.Game) {
	cs := g.CellSize()

	col, row, ok := g.Grid.FindFirst(world.IsWalkable)
	if !ok {
		// Nowhere to stand; park the player at the origin. Every move
		// will be stuck and every ray hits immediately.
		col, row = 0, 0
		log.Warn("level has no walkable cell")
	}
	g.Player = entities.NewPlayer(world.CellCenter(col, row, cs), g.Config.Player, g.Config.Camera)

	g.Guards = g.Guards[:0]
	g.Grid.ForEachCell(func(c, r int, kind world.Cell) {
		if world.IsGuardMarker(kind) {
			g.Guards = append(g.Guards, entities.NewGuard(world.CellCenter(c, r, cs), kind, g.Config.Guards))
		}
	})

	g.FoldersCollected = 0
	g.FoldersTotal = g.Grid.Count(world.Folder)
	g.Collected = mapset.New[state.CellRef]()
	g.Elapsed = 0
	g.Complete = false
	g.Caught = false

	log.WithFields(log.Fields{
		"cols":    g.Grid.Cols(),
		"rows":    g.Grid.Rows(),
		"guards":  len(g.Guards),
		"folders": g.FoldersTotal,
		"spawn":   g.Player.Pos,
	}).Info("level ready")

	g.ClearMessages()
	ShowLevelObjectives(g)
}

// ResetLevel restarts the current level from the grid as it was loaded.
func ResetLevel(g *state.Game) {
	g.Grid = g.Source.Clone()
	SetupLevel(g)
	logMessage(g, gotext.Get("Level restarted."))
}

// Tick advances the simulation by dt seconds. Large deltas are clamped and
// split into sub-steps so that no single step tunnels through a wall. Once
// the level is over nothing moves.
func Tick(g *state.Game, in input.Intent, dt float64) {
	if g.Over() || dt <= 0 {
		return
	}
	sim := g.Config.Simulation
	dt = math.Min(dt, sim.MaxFrameDelta)

	steps := int(math.Ceil(dt / sim.MaxSubStep))
	h := dt / float64(steps)
	for i := 0; i < steps && !g.Over(); i++ {
		// Mouse yaw is a per-frame quantity; apply it once.
		if i > 0 {
			in.YawDelta = 0
		}
		step(g, in, h)
	}
}

func step(g *state.Game, in input.Intent, dt float64) {
	cs := g.CellSize()
	UpdatePlayer(g.Player, in, dt, g.Grid, cs)
	CollectFolder(g)
	UpdateGuards(g.Guards, g.Player.Pos, dt, g.Grid, cs)
	if !CheckCaught(g) {
		CheckGoal(g)
	}
	g.Elapsed += dt
}
