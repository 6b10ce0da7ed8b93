package raycast

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
)

const cs = 64.0

func givenGrid(t *testing.T, src string) *world.Grid {
	t.Helper()
	g, err := world.ParseString(src)
	require.NoError(t, err)
	return g
}

func TestCast_RingFromCentreFacingEast(t *testing.T) {
	g := givenGrid(t, "+++++\n+   +\n+   +\n+   +\n+++++")
	origin := world.CellCenter(2, 2, cs)

	hit, ok := Cast(g, cs, origin, 0, 2000)

	require.True(t, ok, "ray inside a closed ring must hit")
	assert.Equal(t, 4, hit.Col)
	assert.Equal(t, 2, hit.Row)
	assert.InDelta(t, 4*cs-origin.X, hit.Distance, Step)
	assert.InDelta(t, 4*cs, hit.Point.X, Step)
	assert.True(t, hit.Vertical, "east-facing hit on a west wall face is a vertical face")
}

func TestCast_HorizontalFace(t *testing.T) {
	g := givenGrid(t, "+++++\n+   +\n+   +\n+   +\n+++++")
	hit, ok := Cast(g, cs, world.CellCenter(2, 2, cs), math.Pi/2, 2000)

	require.True(t, ok)
	assert.Equal(t, 2, hit.Col)
	assert.Equal(t, 4, hit.Row)
	assert.False(t, hit.Vertical, "south-facing hit lands on a horizontal face")
}

func TestCast_WalkablePathWithinRangeNeverHits(t *testing.T) {
	g := world.NewGrid(10, 10)
	origin := geom.V(5*cs, 5*cs)

	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		// Nearest boundary is 5 cells away in every direction.
		_, ok := Cast(g, cs, origin, angle, 5*cs)
		assert.False(t, ok, "angle %.3f", angle)
	}
}

func TestCast_EscapingRayReportsNoHit(t *testing.T) {
	g := givenGrid(t, "     \n     \n     ")
	_, ok := Cast(g, cs, world.CellCenter(2, 1, cs), 0, 1e6)
	assert.False(t, ok)
}

func TestCast_StopsAtMaxDistance(t *testing.T) {
	g := givenGrid(t, "+++++++++\n+       +\n+++++++++")
	_, ok := Cast(g, cs, world.CellCenter(1, 1, cs), 0, 2*cs)
	assert.False(t, ok, "wall is 7 cells away, range is 2")
}

func TestCast_MarkersAndCollectiblesAreTransparent(t *testing.T) {
	g := givenGrid(t, "++++++++\n+ GHfg +\n++++++++")
	hit, ok := Cast(g, cs, world.CellCenter(1, 1, cs), 0, 2000)

	require.True(t, ok)
	assert.Equal(t, 7, hit.Col, "ray should pass every walkable kind and stop at the east wall")
}

func TestCast_UnknownBlocks(t *testing.T) {
	g := givenGrid(t, "      \n  ?   \n      ")
	hit, ok := Cast(g, cs, world.CellCenter(0, 1, cs), 0, 2000)

	require.True(t, ok)
	assert.Equal(t, 2, hit.Col)
	assert.Equal(t, 1, hit.Row)
}

func TestLineOfSight(t *testing.T) {
	g := givenGrid(t, "+++++++\n+     +\n+  +  +\n+     +\n+++++++")

	assert.True(t, LineOfSight(g, cs, world.CellCenter(1, 1, cs), world.CellCenter(5, 1, cs)))
	assert.False(t, LineOfSight(g, cs, world.CellCenter(1, 2, cs), world.CellCenter(5, 2, cs)))
}

func TestCast_ConcurrentCallsAgree(t *testing.T) {
	g := givenGrid(t, "+++++++\n+     +\n+  +  +\n+     +\n+++++++")
	origin := world.CellCenter(1, 1, cs)
	want, _ := Cast(g, cs, origin, 0.3, 2000)

	var wg sync.WaitGroup
	results := make([]Hit, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Cast(g, cs, origin, 0.3, 2000)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
