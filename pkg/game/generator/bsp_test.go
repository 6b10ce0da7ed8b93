// Package generator tests BSP office generation: perimeter walls,
// connectivity, goal placement, folders and guards.
package generator

import (
	"math/rand"
	"testing"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/gameplay"
)

// countReachable returns the number of walkable cells reachable from
// (col, row) through 4-neighbours.
func countReachable(grid *world.Grid, col, row int) int {
	type cell struct{ col, row int }
	seen := map[cell]bool{{col, row}: true}
	queue := []cell{{col, row}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range []cell{{c.col + 1, c.row}, {c.col - 1, c.row}, {c.col, c.row + 1}, {c.col, c.row - 1}} {
			if grid.InBounds(n.col, n.row) && world.IsWalkable(grid.At(n.col, n.row)) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func countWalkable(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(_, _ int, c world.Cell) {
		if world.IsWalkable(c) {
			n++
		}
	})
	return n
}

func TestBSPGenerate_PerimeterIsWall(t *testing.T) {
	grid := DefaultGenerator.Generate(1, rand.New(rand.NewSource(1)))
	for col := 0; col < grid.Cols(); col++ {
		if grid.At(col, 0) != world.Wall || grid.At(col, grid.Rows()-1) != world.Wall {
			t.Fatalf("column %d: top or bottom edge is not wall", col)
		}
	}
	for row := 0; row < grid.Rows(); row++ {
		if grid.At(0, row) != world.Wall || grid.At(grid.Cols()-1, row) != world.Wall {
			t.Fatalf("row %d: left or right edge is not wall", row)
		}
	}
}

func TestBSPGenerate_AllCellsReachable(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid := DefaultGenerator.Generate(int(seed%4)+1, rand.New(rand.NewSource(seed)))
		col, row, ok := grid.FindFirst(world.IsWalkable)
		if !ok {
			t.Fatalf("seed %d: no walkable cell", seed)
		}
		if got, want := countReachable(grid, col, row), countWalkable(grid); got != want {
			t.Errorf("seed %d: reachable cells %d != walkable cells %d (isolated offices)", seed, got, want)
		}
	}
}

func TestBSPGenerate_GoalFoldersGuards(t *testing.T) {
	grid := DefaultGenerator.Generate(3, rand.New(rand.NewSource(7)))

	if grid.Count(world.Goal) != 1 {
		t.Errorf("Count(Goal) = %d, want 1", grid.Count(world.Goal))
	}
	if n := grid.Count(world.Folder); n < 1 || n > 5 {
		t.Errorf("Count(Folder) = %d, want 1..5", n)
	}
	if n := grid.Count(world.Guard1) + grid.Count(world.Guard2); n > 3 {
		t.Errorf("guards = %d, want at most 3", n)
	}

	col, row, _ := grid.FindFirst(world.IsWalkable)
	if grid.At(col, row) == world.Goal {
		t.Error("goal placed on the spawn cell")
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a := DefaultGenerator.Generate(2, rand.New(rand.NewSource(42)))
	b := DefaultGenerator.Generate(2, rand.New(rand.NewSource(42)))
	if a.String() != b.String() {
		t.Error("same seed produced different floors")
	}
}

func TestBSPGenerate_SizeScalesWithLevel(t *testing.T) {
	small := DefaultGenerator.Generate(1, rand.New(rand.NewSource(5)))
	large := DefaultGenerator.Generate(20, rand.New(rand.NewSource(6)))
	if small.Cols() != 32 || small.Rows() != 18 {
		t.Errorf("level 1 size = %dx%d, want 32x18", small.Cols(), small.Rows())
	}
	if large.Cols() != maxCols || large.Rows() != maxRows {
		t.Errorf("level 20 size = %dx%d, want capped %dx%d", large.Cols(), large.Rows(), maxCols, maxRows)
	}
}

func TestBSPGenerate_Playable(t *testing.T) {
	grid := DefaultGenerator.Generate(2, rand.New(rand.NewSource(11)))
	g := gameplay.NewLevel(grid, config.Default())
	if g.FoldersTotal != grid.Count(world.Folder) {
		t.Errorf("FoldersTotal = %d, want %d", g.FoldersTotal, grid.Count(world.Folder))
	}
	if g.Over() {
		t.Error("a fresh level should not be over")
	}
}
