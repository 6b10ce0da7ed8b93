package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/terminal"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
	"darkoffice/pkg/game/state"
)

// dumpCols and dumpRows size the raster written to dump files, which have
// no terminal to measure.
const (
	dumpCols = 120
	dumpRows = 40
)

// WriteFrameANSI writes r one text line per raster row. With colorize set
// every glyph carries its foreground and background as 24-bit colour
// escapes; otherwise only the glyphs are written.
func WriteFrameANSI(w io.Writer, r *renderer.Raster, colorize bool) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < r.Rows; row++ {
		if !colorize {
			bw.WriteString(r.Line(row))
			bw.WriteByte('\n')
			continue
		}
		for col := 0; col < r.Cols; col++ {
			gl := r.At(col, row)
			st := color.NewRGBStyle(
				color.RGB(gl.FG.R, gl.FG.G, gl.FG.B),
				color.RGB(gl.BG.R, gl.BG.G, gl.BG.B, true),
			)
			bw.WriteString(st.Sprint(string(gl.Rune)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// TerminalRaster rasterizes frame to fit the terminal attached to out,
// keeping the frame's aspect ratio and leaving one line for the prompt.
func TerminalRaster(out *os.File, frame projector.Frame, cellSize float64) *renderer.Raster {
	cols, rows := terminal.Size(out)
	cols, rows = terminal.FitAspect(frame.Width, frame.Height, cols, rows-1)
	return renderer.Rasterize(frame, cols, rows, cellSize)
}

// DumpFrameToFile writes the frame as plain text followed by the map dump
// to a timestamped file in the working directory and returns its path.
func DumpFrameToFile(g *state.Game, frame projector.Frame) (string, error) {
	name := fmt.Sprintf("frame-%s.txt", time.Now().Format("20060102-150405"))
	absPath, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeFrameDump(f, g, frame); err != nil {
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	log.WithField("path", absPath).Info("frame dump written")
	return absPath, nil
}

func writeFrameDump(w io.Writer, g *state.Game, frame projector.Frame) error {
	r := renderer.Rasterize(frame, dumpCols, dumpRows, g.CellSize())
	fmt.Fprintf(w, "=== FRAME %dx%d: %d walls, %d floor spans, %d sprites ===\n",
		frame.Width, frame.Height, len(frame.Walls), len(frame.Floor), len(frame.Sprites))
	if err := WriteFrameANSI(w, r, false); err != nil {
		return err
	}
	fmt.Fprintln(w, "")
	return WriteMapDump(w, g)
}
