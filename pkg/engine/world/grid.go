package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"darkoffice/pkg/engine/geom"
)

// Errors returned by the level loaders
var (
	ErrEmpty      = errors.New("level source is empty")
	ErrUnreadable = errors.New("level source is unreadable")
)

// Grid is the rectangular tile map for one level.
// Cells are stored row-major; every row has the same length.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid creates a grid of the given dimensions filled with Floor
func NewGrid(cols, rows int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}
	return &Grid{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Parse reads a level source, one line per row and one character per cell.
// Short rows are right-padded with spaces (Floor) to the longest row before
// the glyphs are mapped, so the result is always rectangular.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	var lines []string
	maxWidth := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, line)
		if n := utf8.RuneCountInString(line); n > maxWidth {
			maxWidth = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if len(lines) == 0 || maxWidth == 0 {
		return nil, ErrEmpty
	}

	g := NewGrid(maxWidth, len(lines))
	for row, line := range lines {
		if n := utf8.RuneCountInString(line); n < maxWidth {
			line += strings.Repeat(" ", maxWidth-n)
		}
		col := 0
		for _, ch := range line {
			g.cells[row*g.cols+col] = CellFromGlyph(ch)
			col++
		}
	}
	return g, nil
}

// ParseString is Parse over an in-memory level source
func ParseString(src string) (*Grid, error) {
	return Parse(strings.NewReader(src))
}

// LoadFile opens and parses a level file
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds checks if a col/row position is within grid bounds
func (g *Grid) InBounds(col, row int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at col/row. Out-of-bounds positions report Unknown,
// which is blocking.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return Unknown
	}
	return g.cells[row*g.cols+col]
}

// Set replaces the cell at col/row. Returns false if out of bounds.
func (g *Grid) Set(col, row int, c Cell) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.cells[row*g.cols+col] = c
	return true
}

// CellAt returns the col/row containing world position p
func CellAt(p geom.Vec2, cellSize float64) (col, row int) {
	return int(math.Floor(p.X / cellSize)), int(math.Floor(p.Y / cellSize))
}

// CellCenter returns the world position of the centre of col/row
func CellCenter(col, row int, cellSize float64) geom.Vec2 {
	return geom.V((float64(col)+0.5)*cellSize, (float64(row)+0.5)*cellSize)
}

// KindAt returns the cell under world position p
func (g *Grid) KindAt(p geom.Vec2, cellSize float64) Cell {
	col, row := CellAt(p, cellSize)
	return g.At(col, row)
}

// ForEachCell calls fn for every cell in row-major order
func (g *Grid) ForEachCell(fn func(col, row int, c Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(col, row, g.cells[row*g.cols+col])
		}
	}
}

// FindFirst returns the first cell in row-major order matching pred
func (g *Grid) FindFirst(pred func(Cell) bool) (col, row int, ok bool) {
	for i, c := range g.cells {
		if pred(c) {
			return i % g.cols, i / g.cols, true
		}
	}
	return 0, 0, false
}

// Count returns how many cells are of kind c
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, rows: g.rows, cols: g.cols}
}

// String renders the grid back to level-source glyphs
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			b.WriteRune(g.cells[row*g.cols+col].Glyph())
		}
	}
	return b.String()
}
