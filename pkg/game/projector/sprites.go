package projector

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"darkoffice/pkg/engine/geom"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/entities"
)

// minSpriteDistance skips sprites the camera is standing inside.
const minSpriteDistance = 8

type candidate struct {
	pos    geom.Vec2
	tex    Texture
	anim   Anim
	distSq float64
}

// gatherSprites lists every billboard source: the static folder and guard
// marker cells, then the live guards.
func gatherSprites(grid *world.Grid, p *entities.Player, guards []*entities.Guard, cs float64) []candidate {
	var out []candidate
	add := func(pos geom.Vec2, tex Texture, anim Anim) {
		out = append(out, candidate{pos: pos, tex: tex, anim: anim, distSq: pos.Sub(p.Pos).LenSq()})
	}
	grid.ForEachCell(func(col, row int, c world.Cell) {
		switch c {
		case world.Folder:
			add(world.CellCenter(col, row, cs), FolderTex, AnimFolder)
		case world.Guard1:
			add(world.CellCenter(col, row, cs), Guard1Tex, AnimGuard)
		case world.Guard2:
			add(world.CellCenter(col, row, cs), Guard2Tex, AnimGuard)
		}
	})
	for _, g := range guards {
		tex := Guard1Tex
		if g.Kind == world.Guard2 {
			tex = Guard2Tex
		}
		add(g.Pos, tex, AnimGuard)
	}
	return out
}

// castSprites places the visible sprites on screen, farthest first so that
// nearer ones draw over them. When there are more than View.MaxSprites
// visible, the farthest are dropped.
func castSprites(grid *world.Grid, p *entities.Player, guards []*entities.Guard, v View, elapsed float64) []Sprite {
	h := heap.New[placed](func(a, b placed) bool {
		return a.distSq > b.distSq
	})

	for _, c := range gatherSprites(grid, p, guards, v.CellSize) {
		if s, ok := project(grid, p, v, c, elapsed); ok {
			h.Push(s)
		}
	}

	drop := 0
	if v.MaxSprites > 0 && h.Size() > v.MaxSprites {
		drop = h.Size() - v.MaxSprites
	}
	out := make([]Sprite, 0, h.Size()-drop)
	for i := 0; h.Size() > 0; i++ {
		s, _ := h.Pop()
		if i < drop {
			continue
		}
		out = append(out, s.Sprite)
	}
	return out
}

type placed struct {
	Sprite
	distSq float64
}

// project culls a candidate and computes its screen rectangle.
func project(grid *world.Grid, p *entities.Player, v View, c candidate, elapsed float64) (placed, bool) {
	dist := math.Sqrt(c.distSq)
	if dist < minSpriteDistance {
		return placed{}, false
	}

	rel := geom.NormalizeAngle(c.pos.Sub(p.Pos).Angle() - p.Dir)
	halfFOV := v.FOV / 2
	if math.Abs(rel) > halfFOV {
		return placed{}, false
	}
	if world.HasWallBetween(grid, v.CellSize, p.Pos, c.pos) {
		return placed{}, false
	}

	w, h := float64(v.Width), float64(v.Height)
	screenX := (rel + halfFOV) / v.FOV * w
	size := math.Min(v.CellSize*h/dist, 2*h)

	scale, bob := animate(c.anim, c.pos, elapsed)
	size *= scale

	x := screenX - size/2
	if x+size < 0 || x >= w {
		return placed{}, false
	}

	return placed{
		Sprite: Sprite{
			X:        x,
			Y:        (h-size)/2 + bob,
			Size:     size,
			Texture:  c.tex,
			Anim:     c.anim,
			Distance: dist,
		},
		distSq: c.distSq,
	}, true
}

// animate returns the size multiplier and vertical offset of a sprite at
// time t. The phase comes from the position so sprites do not pulse in step.
func animate(a Anim, pos geom.Vec2, t float64) (scale, bob float64) {
	phase := (pos.X + pos.Y) * 0.05
	switch a {
	case AnimFolder:
		return 1 + 0.20*math.Sin(3*t+phase), 6 * math.Sin(4*t+phase)
	default:
		s := math.Sin(2*t + phase)
		return 1 + 0.05*s, 3 * s
	}
}
