// Package tui draws the first-person view as coloured character cells in a
// terminal, using tcell for the screen and for keyboard and mouse input.
package tui

import (
	"image/color"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/input"
	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/devtools"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
	"darkoffice/pkg/game/state"
)

const (
	frameInterval = time.Second / 30

	// Terminals report presses and auto-repeats but never releases, so a
	// movement key counts as held until this long after its last event.
	holdWindow = 200 * time.Millisecond

	// Rows under the view: the HUD line and the two newest messages.
	hudRows = 3
)

// oneShot codes fire once per press instead of being held.
var oneShot = map[string]bool{
	"enter":  true,
	"space":  true,
	"escape": true,
	"ctrl_c": true,
	"f9":     true,
}

// TUIRenderer is the terminal backend.
type TUIRenderer struct {
	screen tcell.Screen
	view   projector.View
	events chan tcell.Event
	keys   *keyState
	mouse  mouseState
}

// New creates a terminal renderer for cfg. The screen is opened by Init.
func New(cfg config.Config) *TUIRenderer {
	return &TUIRenderer{
		view: projector.ViewFromConfig(cfg),
		keys: newKeyState(),
	}
}

// NewWithScreen uses an already created screen, such as a simulation
// screen in tests.
func NewWithScreen(cfg config.Config, screen tcell.Screen) *TUIRenderer {
	t := New(cfg)
	t.screen = screen
	return t
}

// Name implements renderer.Renderer.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init opens the terminal screen.
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Close restores the terminal.
func (t *TUIRenderer) Close() {
	if t.screen == nil {
		return
	}
	t.screen.Fini()
	t.screen = nil
}

// Run polls terminal events on a goroutine and steps the game on a fixed
// ticker until the player quits or the screen goes away.
func (t *TUIRenderer) Run(g *state.Game) error {
	t.events = make(chan tcell.Event, 32)
	go t.pollEvents(t.screen)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return nil
			}
			t.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			frame, cmd := renderer.Step(g, t.intent(now), dt, t.view)
			switch cmd {
			case gameplay.CommandQuit:
				return nil
			case gameplay.CommandDump:
				t.dump(g, frame)
			}
			t.draw(g, frame)
		}
	}
}

func (t *TUIRenderer) pollEvents(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

func (t *TUIRenderer) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if code := keyCode(ev); code != "" {
			t.keys.press(code, now)
		}
	case *tcell.EventMouse:
		x, _ := ev.Position()
		cols, _ := t.screen.Size()
		t.mouse.move(x, ev.Buttons()&tcell.Button1 != 0, t.pixelsPerColumn(cols))
	}
}

func (t *TUIRenderer) pixelsPerColumn(cols int) float64 {
	if cols <= 0 {
		return 1
	}
	return float64(t.view.Width) / float64(cols)
}

// intent gathers the keys and mouse drag seen since the previous frame.
func (t *TUIRenderer) intent(now time.Time) input.Intent {
	in := input.IntentFromCodes(t.keys.codes(now))
	in.YawDelta, in.Dragging = t.mouse.take()
	return in
}

func (t *TUIRenderer) dump(g *state.Game, frame projector.Frame) {
	path, err := devtools.DumpFrameToFile(g, frame)
	if err != nil {
		log.WithError(err).Error("frame dump failed")
		return
	}
	g.AddMessage(gotext.Get("Frame written to %s", path))
}

// keyCode translates a tcell key event to an input binding code.
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		switch {
		case r == ' ':
			return "space"
		case r >= 'a' && r <= 'z':
			return "key_" + string(r)
		default:
			return string(r)
		}
	}
	return ""
}

type keyState struct {
	held    map[string]time.Time
	pressed []string
}

func newKeyState() *keyState {
	return &keyState{held: make(map[string]time.Time)}
}

func (k *keyState) press(code string, now time.Time) {
	if oneShot[code] {
		k.pressed = append(k.pressed, code)
		return
	}
	k.held[code] = now
}

// codes returns the one-shot presses since the last call plus every key
// still inside its hold window.
func (k *keyState) codes(now time.Time) []string {
	codes := k.pressed
	k.pressed = nil
	for code, at := range k.held {
		if now.Sub(at) > holdWindow {
			delete(k.held, code)
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// mouseState accumulates horizontal drag distance, in view pixels, between
// frames.
type mouseState struct {
	dragging bool
	lastX    int
	yaw      float64
}

func (m *mouseState) move(x int, down bool, scale float64) {
	if !down {
		m.dragging = false
		return
	}
	if m.dragging {
		m.yaw += float64(x-m.lastX) * scale
	}
	m.dragging = true
	m.lastX = x
}

func (m *mouseState) take() (float64, bool) {
	yaw := m.yaw
	m.yaw = 0
	return yaw, m.dragging
}

func style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

func (t *TUIRenderer) draw(g *state.Game, frame projector.Frame) {
	cols, rows := t.screen.Size()
	viewRows := rows - hudRows
	if cols <= 0 || viewRows <= 0 {
		return
	}
	t.screen.Clear()

	r := renderer.Rasterize(frame, cols, viewRows, g.CellSize())
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			gl := r.At(col, row)
			t.screen.SetContent(col, row, gl.Rune, nil, style(gl.FG, gl.BG))
		}
	}

	if frame.Minimap != nil {
		t.drawMinimap(g, cols, viewRows)
	}

	hud := style(renderer.ColorText, color.RGBA{})
	putText(t.screen, 0, viewRows, strings.Join(gameplay.HUDLines(g), "  "), hud)
	msgs := g.Messages
	if len(msgs) > hudRows-1 {
		msgs = msgs[len(msgs)-(hudRows-1):]
	}
	for i, m := range msgs {
		putText(t.screen, 0, viewRows+1+i, m, hud)
	}
	t.screen.Show()
}

// drawMinimap paints one character per grid cell in the top-left corner,
// skipped when the level would cover more than half the view.
func (t *TUIRenderer) drawMinimap(g *state.Game, cols, rows int) {
	if g.Grid.Cols()+1 > cols/2 || g.Grid.Rows()+1 > rows/2 {
		return
	}
	g.Grid.ForEachCell(func(col, row int, c world.Cell) {
		ch := ' '
		if c == world.Folder {
			ch = 'f'
		}
		t.screen.SetContent(col, row, ch, nil, style(renderer.ColorText, renderer.MinimapColor(c)))
	})
	for _, gd := range g.Guards {
		col, row := world.CellAt(gd.Pos, g.CellSize())
		fg := renderer.ColorGuard1
		if gd.Kind == world.Guard2 {
			fg = renderer.ColorGuard2
		}
		t.screen.SetContent(col, row, gd.Kind.Glyph(), nil, style(fg, renderer.ColorMapFloor))
	}
	col, row := gameplay.PlayerCell(g)
	t.screen.SetContent(col, row, '@', nil, style(renderer.ColorPlayer, renderer.ColorMapFloor))
}

func putText(screen tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}
