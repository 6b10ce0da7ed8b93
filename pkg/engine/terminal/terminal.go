// Package terminal answers questions about the process's output terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height in character cells of the terminal
// attached to f. Falls back to the defaults if f is not a terminal.
func Size(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal. Output to files
// and pipes should not carry colour escapes.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// FitAspect shrinks a pixel resolution to fit inside cols x rows character
// cells, keeping the aspect ratio. A terminal cell is roughly twice as tall
// as it is wide, so rows count double.
func FitAspect(pixelW, pixelH, cols, rows int) (int, int) {
	if pixelW <= 0 || pixelH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w := cols
	h := w * pixelH / pixelW / 2
	if h > rows {
		h = rows
		w = h * 2 * pixelW / pixelH
	}
	if h < 1 {
		h = 1
	}
	if w < 1 {
		w = 1
	}
	return w, h
}
