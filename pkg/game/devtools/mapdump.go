// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/state"
)

// guardSymbol returns the overlay character for a live guard.
func guardSymbol(k world.Cell) rune {
	if k == world.Guard2 {
		return 'h'
	}
	return 'x'
}

// WriteMapDump writes a debug dump of the level: metadata, legend, the
// grid with the player and live guards overlaid, and the guard list.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return errors.New("no grid")
	}
	bw := bufio.NewWriter(w)
	cs := g.CellSize()
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	playerCol, playerRow := gameplay.PlayerCell(g)

	overlay := make(map[state.CellRef]rune, len(g.Guards))
	for _, gd := range g.Guards {
		col, row := world.CellAt(gd.Pos, cs)
		overlay[state.CellRef{Col: col, Row: row}] = guardSymbol(gd.Kind)
	}

	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (level layout, player, guards) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "cell_size: %g\n", cs)
	fmt.Fprintf(bw, "coordinate_system: col,row (0-based, col=x, row=y)\n")
	fmt.Fprintf(bw, "player_cell: %d,%d\n", playerCol, playerRow)
	fmt.Fprintf(bw, "player_pos: %.2f,%.2f\n", g.Player.Pos.X, g.Player.Pos.Y)
	fmt.Fprintf(bw, "player_dir_deg: %.1f\n", g.Player.Dir*180/math.Pi)
	fmt.Fprintf(bw, "folders: %d/%d\n", g.FoldersCollected, g.FoldersTotal)
	fmt.Fprintf(bw, "elapsed: %.2f\n", g.Elapsed)
	fmt.Fprintf(bw, "complete: %v\n", g.Complete)
	fmt.Fprintf(bw, "caught: %v\n", g.Caught)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, "+ = wall  g = goal  f = folder  G/H = guard spawn  ? = unknown  @ = player  x/h = live guard 1/2")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map ---")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch ch, ok := overlay[state.CellRef{Col: col, Row: row}]; {
			case col == playerCol && row == playerRow:
				bw.WriteRune('@')
			case ok:
				bw.WriteRune(ch)
			default:
				bw.WriteRune(g.Grid.At(col, row).Glyph())
			}
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Guards ---")
	for i, gd := range g.Guards {
		col, row := world.CellAt(gd.Pos, cs)
		fmt.Fprintf(bw, "  index: %d kind: %s col: %d row: %d pos: %.2f,%.2f speed: %g state: %s\n",
			i, gd.Kind, col, row, gd.Pos.X, gd.Pos.Y, gd.Speed, gd.State)
	}
	return bw.Flush()
}
