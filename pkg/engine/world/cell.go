// Package world provides the tile grid that every other engine component
// reads: cell kinds, level parsing, grid queries and coarse line tests.
package world

// Cell is the kind of a single tile in the grid.
type Cell uint8

// Cell kinds
const (
	Floor Cell = iota
	Wall
	Goal
	Guard1 // guard spawn marker, walkable
	Guard2 // guard spawn marker, walkable
	Folder // collectible
	Unknown
)

// glyphs maps level-source characters to cells. Anything missing is Unknown.
var glyphs = map[rune]Cell{
	' ': Floor,
	'+': Wall,
	'-': Wall,
	'|': Wall,
	'g': Goal,
	'G': Guard1,
	'H': Guard2,
	'f': Folder,
}

// CellFromGlyph returns the cell kind for a level-source character
func CellFromGlyph(r rune) Cell {
	if c, ok := glyphs[r]; ok {
		return c
	}
	return Unknown
}

// IsBlocking reports whether c stops both movement and rays.
// Exactly Wall and Unknown block; guard markers are ordinary walkable tiles.
func IsBlocking(c Cell) bool {
	return c == Wall || c == Unknown
}

// IsWalkable is the complement of IsBlocking.
func IsWalkable(c Cell) bool {
	return !IsBlocking(c)
}

// IsGuardMarker reports whether c marks a guard spawn point
func IsGuardMarker(c Cell) bool {
	return c == Guard1 || c == Guard2
}

// Glyph returns the canonical level-source character for c.
func (c Cell) Glyph() rune {
	switch c {
	case Floor:
		return ' '
	case Wall:
		return '+'
	case Goal:
		return 'g'
	case Guard1:
		return 'G'
	case Guard2:
		return 'H'
	case Folder:
		return 'f'
	default:
		return '?'
	}
}

// String returns the name of the cell kind
func (c Cell) String() string {
	switch c {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Goal:
		return "Goal"
	case Guard1:
		return "Guard1"
	case Guard2:
		return "Guard2"
	case Folder:
		return "Folder"
	default:
		return "Unknown"
	}
}
