package renderer

import (
	"image/color"
	"math"
	"sort"

	"darkoffice/pkg/game/projector"
)

// Glyph is one character cell of a text rendering.
type Glyph struct {
	Rune   rune
	FG, BG color.RGBA
}

// Raster is a frame resampled to a grid of character cells, for the
// terminal backend and the frame dump.
type Raster struct {
	Cols, Rows int
	Cells      []Glyph
}

// At returns the glyph at (col, row).
func (r *Raster) At(col, row int) Glyph {
	return r.Cells[row*r.Cols+col]
}

// Line returns one row of the raster as runes.
func (r *Raster) Line(row int) string {
	out := make([]rune, r.Cols)
	for col := range out {
		out[col] = r.At(col, row).Rune
	}
	return string(out)
}

func (r *Raster) set(col, row int, g Glyph) {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return
	}
	r.Cells[row*r.Cols+col] = g
}

// wallRamp holds wall glyphs from nearest to farthest.
var wallRamp = []rune{'█', '▓', '▒', '░'}

// fogCells is the distance, in cells, at which walls reach the last ramp
// glyph and their dimmest shade.
const fogCells = 10

var spriteRunes = map[projector.Texture]rune{
	projector.FolderTex: 'f',
	projector.Guard1Tex: 'G',
	projector.Guard2Tex: 'H',
}

// Rasterize samples f at the centre of each of cols x rows character cells.
// Layers are painted in frame order: background, goal floor, walls, sprites.
func Rasterize(f projector.Frame, cols, rows int, cellSize float64) *Raster {
	r := &Raster{Cols: cols, Rows: rows, Cells: make([]Glyph, cols*rows)}
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return r
	}
	sx := float64(f.Width) / float64(cols)
	sy := float64(f.Height) / float64(rows)
	horizon := float64(f.Height) / 2

	for row := 0; row < rows; row++ {
		py := (float64(row) + 0.5) * sy
		for col := 0; col < cols; col++ {
			if py < horizon {
				r.set(col, row, Glyph{Rune: ' ', FG: ColorSky, BG: ColorSky})
			} else {
				r.set(col, row, Glyph{Rune: '.', FG: Shade(ColorFloor, 1.6), BG: ColorFloor})
			}
		}
	}

	for _, s := range f.Floor {
		row := int(float64(s.Y) / sy)
		for col := int(float64(s.X) / sx); float64(col)*sx < float64(s.X+s.Width); col++ {
			r.set(col, row, Glyph{Rune: '.', FG: Shade(ColorGoal, 0.6), BG: ColorGoal})
		}
	}

	fog := fogCells * cellSize
	for col := 0; col < cols; col++ {
		px := (float64(col) + 0.5) * sx
		i := sort.Search(len(f.Walls), func(i int) bool {
			return float64(f.Walls[i].X+f.Walls[i].Width) > px
		})
		if i == len(f.Walls) || float64(f.Walls[i].X) > px {
			continue
		}
		w := f.Walls[i]
		near := 1 - math.Min(w.Distance/fog, 1)
		ramp := wallRamp[min(int((1-near)*float64(len(wallRamp))), len(wallRamp)-1)]
		fg := Shade(TextureColor(w.Texture), w.Tint*(0.3+0.7*near))
		for row := 0; row < rows; row++ {
			py := (float64(row) + 0.5) * sy
			if py >= w.Top && py < w.Top+w.Height {
				r.set(col, row, Glyph{Rune: ramp, FG: fg, BG: Shade(fg, 0.5)})
			}
		}
	}

	for _, s := range f.Sprites {
		ch, ok := spriteRunes[s.Texture]
		if !ok {
			continue
		}
		fg := TextureColor(s.Texture)
		for row := int(s.Y / sy); float64(row)*sy < s.Y+s.Size; row++ {
			for col := int(s.X / sx); float64(col)*sx < s.X+s.Size; col++ {
				if col < 0 || row < 0 {
					continue
				}
				bg := r.At(min(col, cols-1), min(row, rows-1)).BG
				r.set(col, row, Glyph{Rune: ch, FG: fg, BG: bg})
			}
		}
	}
	return r
}
