// Package ebiten draws the first-person view in a window with Ebiten.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/devtools"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
	"darkoffice/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	cfg  config.Config
	view projector.View

	// Current game state (set by Run)
	game *state.Game

	// Last projected frame, drawn by Draw
	frame projector.Frame

	textures *textureSet
	mouse    mouseDrag
	fade     *fader

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New(cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		cfg:  cfg,
		view: projector.ViewFromConfig(cfg),
		fade: newFader(float32(cfg.Render.FadeSeconds)),
	}
}

// Name implements renderer.Renderer.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init sets up the window and builds the textures.
func (e *EbitenRenderer) Init() error {
	ebiten.SetWindowSize(e.cfg.Screen.Width, e.cfg.Screen.Height)
	ebiten.SetWindowTitle(e.cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.textures = newTextureSet()
	return nil
}

// Close is a no-op; Ebiten tears the window down when RunGame returns.
func (e *EbitenRenderer) Close() {}

// Run starts the Ebiten game loop
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.fade.levelStarted()
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithFields(log.Fields{"width": w, "height": h}).Info("main window opened")
	}

	dt := 1 / float64(ebiten.TPS())
	frame, cmd := renderer.Step(e.game, e.intent(), dt, e.view)
	switch cmd {
	case gameplay.CommandQuit:
		return ebiten.Termination
	case gameplay.CommandDump:
		e.dump(frame)
	case gameplay.CommandRestart:
		e.fade.levelStarted()
	}
	e.frame = frame
	e.fade.update(float32(dt), e.game.Over())
	return nil
}

func (e *EbitenRenderer) dump(frame projector.Frame) {
	path, err := devtools.DumpFrameToFile(e.game, frame)
	if err != nil {
		log.WithError(err).Error("frame dump failed")
		return
	}
	e.game.AddMessage(gotext.Get("Frame written to %s", path))
}

// Draw renders the last projected frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.drawFrame(screen, e.frame)
	e.drawHUD(screen)
	e.fade.draw(screen)
}

// Layout returns the game's logical screen size (Ebiten interface). The
// projection is computed at the configured resolution and scaled to the
// window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.view.Width, e.view.Height
}
