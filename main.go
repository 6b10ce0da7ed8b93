package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/engine/terminal"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/devtools"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/generator"
	"darkoffice/pkg/game/logging"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
	ebitenrenderer "darkoffice/pkg/game/renderer/ebiten"
	"darkoffice/pkg/game/renderer/tui"
	"darkoffice/pkg/game/state"
)

type options struct {
	configPath string
	levelPath  string
	generate   int
	seed       int64
	backend    string
	logLevel   string
	logFormat  string
	logFile    string
	lang       string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "config.yaml", "path to the YAML config (missing file uses defaults)")
	flag.StringVar(&o.levelPath, "level", "levels/level1.txt", "level file to play")
	flag.IntVar(&o.generate, "generate", 0, "play a generated office floor of this level instead of -level (0 = off)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed for -generate (0 = time based)")
	flag.StringVar(&o.backend, "backend", "ebiten", "presentation backend: ebiten, tui or dump")
	flag.StringVar(&o.logLevel, "log-level", "", "log level, overrides the config (trace, debug, info, warn, error)")
	flag.StringVar(&o.logFormat, "log-format", "", "log format, overrides the config (text or json)")
	flag.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr (the tui backend defaults to darkoffice.log)")
	flag.StringVar(&o.lang, "lang", "en_GB", "locale for HUD text")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.WithError(err).Error("darkoffice stopped")
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	logOut, closeLog, err := logOutput(o)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, logOut); err != nil {
		return err
	}

	gotext.Configure("locales", o.lang, "default")

	if err := input.ApplyBindings(cfg.Input.Bindings); err != nil {
		return err
	}
	for action, codes := range input.GetBindingsByAction() {
		log.WithField("codes", codes).Debugf("binding %s", input.ActionName(action))
	}

	grid, err := loadGrid(o)
	if err != nil {
		return err
	}

	g := gameplay.NewLevel(grid, cfg)

	if o.backend == "dump" {
		return dumpFrame(os.Stdout, g)
	}

	var r renderer.Renderer
	switch o.backend {
	case "ebiten":
		r = ebitenrenderer.New(cfg)
	case "tui":
		r = tui.New(cfg)
	default:
		return fmt.Errorf("unknown backend %q: want ebiten, tui or dump", o.backend)
	}
	renderer.SetRenderer(r)

	if err := r.Init(); err != nil {
		return fmt.Errorf("%s backend: %w", r.Name(), err)
	}
	defer r.Close()

	log.WithField("backend", r.Name()).Info("starting")
	if err := r.Run(g); err != nil {
		return fmt.Errorf("%s backend: %w", r.Name(), err)
	}
	fmt.Println(gotext.Get("Goodbye."))
	return nil
}

// loadGrid reads the level file, or generates a floor when asked to.
func loadGrid(o options) (*world.Grid, error) {
	if o.generate > 0 {
		seed := o.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid := generator.DefaultGenerator.Generate(o.generate, rand.New(rand.NewSource(seed)))
		log.WithFields(log.Fields{
			"generator": generator.DefaultGenerator.Name(),
			"level":     o.generate,
			"seed":      seed,
		}).Info("level generated")
		return grid, nil
	}

	grid, err := world.LoadFile(o.levelPath)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"level": o.levelPath,
		"cols":  grid.Cols(),
		"rows":  grid.Rows(),
	}).Info("level loaded")
	return grid, nil
}

// logOutput picks where logs go. The terminal backend owns the screen, so
// its logs go to a file unless one was named.
func logOutput(o options) (io.Writer, func(), error) {
	path := o.logFile
	if path == "" && o.backend == "tui" {
		path = "darkoffice.log"
	}
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// dumpFrame prints the opening frame of the level to out, coloured when out
// is a terminal, followed by the HUD lines.
func dumpFrame(out *os.File, g *state.Game) error {
	frame := projector.ProjectGame(g, projector.ViewFromConfig(g.Config))
	r := devtools.TerminalRaster(out, frame, g.CellSize())
	if err := devtools.WriteFrameANSI(out, r, terminal.IsTerminal(out)); err != nil {
		return err
	}
	for _, line := range gameplay.HUDLines(g) {
		fmt.Fprintln(out, line)
	}
	return nil
}
