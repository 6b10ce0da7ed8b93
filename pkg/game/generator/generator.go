// Package generator builds random office floors as level grids, for play
// without a hand-written level file.
package generator

import (
	"math/rand"

	"darkoffice/pkg/engine/world"
)

// GridGenerator is an interface for level generation algorithms
type GridGenerator interface {
	Generate(level int, rng *rand.Rand) *world.Grid
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{}
)

// DefaultGenerator is the default level generator
var DefaultGenerator GridGenerator = BSP
