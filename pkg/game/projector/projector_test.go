package projector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/raycast"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/entities"
)

const cs = 64.0

func givenGrid(t *testing.T, src string) *world.Grid {
	t.Helper()
	g, err := world.ParseString(src)
	require.NoError(t, err)
	return g
}

func givenPlayer(col, row int, dir float64) *entities.Player {
	return &entities.Player{Pos: world.CellCenter(col, row, cs), Dir: dir, Radius: 12}
}

func defaultView() View {
	return ViewFromConfig(config.Default())
}

const ring = "+++++\n+   +\n+   +\n+   +\n+++++"

func TestWallHeight_FartherIsShorter(t *testing.T) {
	for _, offset := range []float64{0, 0.3, -0.5, math.Pi / 6} {
		prev := math.Inf(1)
		for _, d := range []float64{100, 150, 200, 400, 1000} {
			h := WallHeight(cs, 640, d, offset)
			assert.Less(t, h, prev, "offset %v distance %v", offset, d)
			prev = h
		}
	}
}

func TestWallHeight_Clamp(t *testing.T) {
	assert.Equal(t, 640.0, WallHeight(cs, 640, 10, 0))
	assert.Equal(t, 640.0, WallHeight(cs, 640, 100, math.Pi/2), "near-perpendicular rays clamp, not divide by zero")
}

func TestWallHeight_FisheyeCorrection(t *testing.T) {
	straight := WallHeight(cs, 640, 300, 0)
	oblique := WallHeight(cs, 640, 300, 0.4)
	assert.Greater(t, oblique, straight)
	assert.InDelta(t, straight/math.Cos(0.4), oblique, 1e-9)
}

func TestProject_RingCentreFacingEast(t *testing.T) {
	grid := givenGrid(t, ring)
	p := givenPlayer(2, 2, 0)
	v := defaultView()

	f := Project(grid, p, nil, v, 0)

	require.Len(t, f.Walls, v.Width/v.Stride, "an enclosed room has a wall in every column")
	var centre *WallSlice
	for i := range f.Walls {
		if f.Walls[i].X == v.Width/2 {
			centre = &f.Walls[i]
		}
	}
	require.NotNil(t, centre)

	hit, ok := raycast.Cast(grid, cs, p.Pos, 0, v.MaxDistance)
	require.True(t, ok)
	assert.Equal(t, 4, hit.Col)
	assert.Equal(t, 2, hit.Row)
	assert.InDelta(t, 4*cs-p.Pos.X, centre.Distance, raycast.Step)
	assert.True(t, centre.Vertical)
	assert.Equal(t, 1.0, centre.Tint)
	assert.Equal(t, WallA, centre.Texture, "(4+2) is even")
	assert.InDelta(t, 0.5, centre.U, 1e-9)
	assert.InDelta(t, WallHeight(cs, v.Height, hit.Distance, 0), centre.Height, 1e-9)
	assert.InDelta(t, (float64(v.Height)-centre.Height)/2, centre.Top, 1e-9)
}

func TestProject_WallSliceWidths(t *testing.T) {
	grid := givenGrid(t, ring)
	v := defaultView()
	v.Width, v.Stride = 101, 4

	f := Project(grid, givenPlayer(2, 2, 1), nil, v, 0)

	require.NotEmpty(t, f.Walls)
	last := f.Walls[len(f.Walls)-1]
	assert.Equal(t, 100, last.X)
	assert.Equal(t, 1, last.Width, "last slice is cut at the screen edge")
	for _, s := range f.Walls {
		assert.GreaterOrEqual(t, s.U, 0.0)
		assert.Less(t, s.U, 1.0)
	}
}

func TestProject_HorizontalFaceIsTinted(t *testing.T) {
	grid := givenGrid(t, ring)
	v := defaultView()

	f := Project(grid, givenPlayer(2, 2, math.Pi/2), nil, v, 0)

	for _, s := range f.Walls {
		if s.X == v.Width/2 {
			assert.False(t, s.Vertical)
			assert.InDelta(t, 200.0/255.0, s.Tint, 1e-12)
			return
		}
	}
	t.Fatal("no centre slice")
}

func TestProject_GoalFloorSpans(t *testing.T) {
	grid := givenGrid(t, "+++++++\n+  gg +\n+++++++")
	v := defaultView()

	f := Project(grid, givenPlayer(1, 1, 0), nil, v, 0)

	require.NotEmpty(t, f.Floor)
	perLine := map[int]int{}
	for _, s := range f.Floor {
		assert.Greater(t, s.Y, v.Height/2, "floor spans are below the horizon")
		assert.Less(t, s.Y, v.Height)
		assert.Positive(t, s.Width)
		perLine[s.Y]++
	}
	for y, n := range perLine {
		assert.Equal(t, 1, n, "scanline %d: adjacent goal samples merge into one span", y)
	}

	// Straight ahead, 157.5 units out, is inside the goal cells.
	found := false
	for _, s := range f.Floor {
		if s.Y == 450 && s.X <= v.Width/2 && v.Width/2 < s.X+s.Width {
			found = true
		}
	}
	assert.True(t, found, "no goal span under the view centre on scanline 450")
}

func TestProject_NoGoalNoFloor(t *testing.T) {
	f := Project(givenGrid(t, ring), givenPlayer(2, 2, 0), nil, defaultView(), 0)
	assert.Empty(t, f.Floor)
}

func TestProject_SpriteInFront(t *testing.T) {
	grid := givenGrid(t, "+++++++\n+  f  +\n+++++++")
	v := defaultView()

	f := Project(grid, givenPlayer(1, 1, 0), nil, v, 1.5)

	require.Len(t, f.Sprites, 1)
	s := f.Sprites[0]
	assert.Equal(t, FolderTex, s.Texture)
	assert.Equal(t, AnimFolder, s.Anim)
	assert.InDelta(t, 128, s.Distance, 1e-9)
	assert.InDelta(t, float64(v.Width)/2, s.X+s.Size/2, 1e-6, "centred on screen")

	scale, bob := animate(AnimFolder, world.CellCenter(3, 1, cs), 1.5)
	assert.InDelta(t, cs*float64(v.Height)/128*scale, s.Size, 1e-6)
	assert.InDelta(t, (float64(v.Height)-s.Size)/2+bob, s.Y, 1e-6)
}

func TestProject_SpriteCulling(t *testing.T) {
	v := defaultView()

	t.Run("behind a wall", func(t *testing.T) {
		grid := givenGrid(t, "+++++++\n+ + f +\n+++++++")
		f := Project(grid, givenPlayer(1, 1, 0), nil, v, 0)
		assert.Empty(t, f.Sprites)
	})
	t.Run("behind the player", func(t *testing.T) {
		grid := givenGrid(t, "+++++++\n+  f  +\n+++++++")
		f := Project(grid, givenPlayer(1, 1, math.Pi), nil, v, 0)
		assert.Empty(t, f.Sprites)
	})
	t.Run("too close", func(t *testing.T) {
		grid := givenGrid(t, "+++++\n+   +\n+++++")
		p := givenPlayer(1, 1, 0)
		g := &entities.Guard{Pos: p.Pos.Add(geom.V(4, 0)), Kind: world.Guard1, Radius: 12}
		f := Project(grid, p, []*entities.Guard{g}, v, 0)
		assert.Empty(t, f.Sprites)
	})
}

func TestProject_SpritesFarToNearWithCap(t *testing.T) {
	grid := givenGrid(t, "+++++++++\n+ f f f  +\n+++++++++")
	v := defaultView()
	v.MaxSprites = 2

	f := Project(grid, givenPlayer(1, 1, 0), nil, v, 0)

	require.Len(t, f.Sprites, 2, "the farthest folder is dropped")
	assert.InDelta(t, 192, f.Sprites[0].Distance, 1e-9)
	assert.InDelta(t, 64, f.Sprites[1].Distance, 1e-9)

	v.MaxSprites = 0
	f = Project(grid, givenPlayer(1, 1, 0), nil, v, 0)
	require.Len(t, f.Sprites, 3)
	for i := 1; i < len(f.Sprites); i++ {
		assert.Greater(t, f.Sprites[i-1].Distance, f.Sprites[i].Distance)
	}
}

func TestProject_LiveGuardsAndMarkers(t *testing.T) {
	grid := givenGrid(t, "++++++\n+   H+\n++++++")
	guard := entities.NewGuard(world.CellCenter(4, 1, cs), world.Guard2, config.Default().Guards)
	guard.Pos = guard.Pos.Sub(geom.V(64, 0))

	f := Project(grid, givenPlayer(1, 1, 0), []*entities.Guard{guard}, defaultView(), 0)

	require.Len(t, f.Sprites, 2, "the spawn marker and the live guard")
	for _, s := range f.Sprites {
		assert.Equal(t, Guard2Tex, s.Texture)
		assert.Equal(t, AnimGuard, s.Anim)
	}
	assert.InDelta(t, 192, f.Sprites[0].Distance, 1e-9)
	assert.InDelta(t, 128, f.Sprites[1].Distance, 1e-9)
}

func TestMinimap(t *testing.T) {
	grid := givenGrid(t, ring)
	p := givenPlayer(2, 2, 0)
	v := defaultView()

	m := Minimap(grid, p, []*entities.Guard{{Pos: world.CellCenter(1, 1, cs), Kind: world.Guard1}}, v)

	require.NotNil(t, m)
	assert.Len(t, m.Tiles, 25)
	assert.Equal(t, Rect{X: 10, Y: 10, W: 62, H: 62}, m.Panel)
	assert.Equal(t, geom.V(16+25, 16+25), m.Player)
	assert.InDelta(t, m.Player.X+7, m.Tip.X, 1e-9)
	require.Len(t, m.Guards, 1)
	assert.InDelta(t, 16+15, m.Guards[0].X, 1e-9)

	v.MinimapCell = 0
	assert.Nil(t, Minimap(grid, p, nil, v))
}

func TestProject_DoesNotMutate(t *testing.T) {
	grid := givenGrid(t, "+++++++\n+  f g +\n+++++++")
	before := grid.String()
	p := givenPlayer(1, 1, 0)

	Project(grid, p, nil, defaultView(), 3)

	assert.Equal(t, before, grid.String())
	assert.Equal(t, world.CellCenter(1, 1, cs), p.Pos)
}
