package collision

import (
	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
)

// Outcome records which step of the movement policy committed.
type Outcome int

// Movement outcomes
const (
	Moved   Outcome = iota // full displacement
	SlidX                  // horizontal component only
	SlidY                  // vertical component only
	Jiggled                // small nudge along an axis
	Stuck                  // nothing fit; position unchanged
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case SlidX:
		return "slid-x"
	case SlidY:
		return "slid-y"
	case Jiggled:
		return "jiggled"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Policy parameterises Resolve. A zero Jiggle disables the nudge fallback.
type Policy struct {
	Jiggle float64
}

// Body is the circle being moved.
type Body struct {
	Pos    geom.Vec2
	Radius float64
}

// Resolve moves a body by delta, sliding along walls:
//  1. the full displacement,
//  2. the horizontal component alone,
//  3. the vertical component alone,
//  4. if the policy allows, a nudge of Policy.Jiggle along +x, -x, +y, -y,
//
// committing the first candidate that does not overlap. When none fits the
// body stays where it is; that is a normal outcome, not an error.
func Resolve(grid *world.Grid, cellSize float64, b Body, delta geom.Vec2, p Policy) (geom.Vec2, Outcome) {
	if delta.IsZero() {
		return b.Pos, Moved
	}

	fits := func(pos geom.Vec2) bool {
		return !Overlaps(grid, cellSize, pos, b.Radius)
	}

	if next := b.Pos.Add(delta); fits(next) {
		return next, Moved
	}
	if next := b.Pos.Add(delta.OnlyX()); fits(next) {
		return next, SlidX
	}
	if next := b.Pos.Add(delta.OnlyY()); fits(next) {
		return next, SlidY
	}

	if p.Jiggle > 0 {
		for _, dir := range world.JiggleOrder() {
			if next := b.Pos.Add(dir.Delta().Scale(p.Jiggle)); fits(next) {
				return next, Jiggled
			}
		}
	}
	return b.Pos, Stuck
}
