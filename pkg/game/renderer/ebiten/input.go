package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "darkoffice/pkg/engine/input"
)

// heldKeys are read every tick while down.
var heldKeys = map[ebiten.Key]string{
	ebiten.KeyW:          "key_w",
	ebiten.KeyS:          "key_s",
	ebiten.KeyA:          "key_a",
	ebiten.KeyD:          "key_d",
	ebiten.KeyQ:          "key_q",
	ebiten.KeyE:          "key_e",
	ebiten.KeyComma:      ",",
	ebiten.KeyPeriod:     ".",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
}

// pressKeys fire once, on the tick they go down.
var pressKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:   "enter",
	ebiten.KeyKPEnter: "enter",
	ebiten.KeySpace:   "space",
	ebiten.KeyEscape:  "escape",
	ebiten.KeyF9:      "f9",
}

// keyCodes returns the binding codes for this tick's keyboard state.
func keyCodes(pressed func(ebiten.Key) bool, justPressed func(ebiten.Key) bool) []string {
	var codes []string
	for k, code := range heldKeys {
		if pressed(k) {
			codes = append(codes, code)
		}
	}
	for k, code := range pressKeys {
		if justPressed(k) {
			codes = append(codes, code)
		}
	}
	if pressed(ebiten.KeyControl) && justPressed(ebiten.KeyC) {
		codes = append(codes, "ctrl_c")
	}
	return codes
}

// mouseDrag turns left-button drags into horizontal yaw deltas.
type mouseDrag struct {
	dragging bool
	lastX    int
}

// update returns the cursor travel since the previous tick while the
// button is held.
func (m *mouseDrag) update(x int, down bool) (float64, bool) {
	if !down {
		m.dragging = false
		return 0, false
	}
	var delta float64
	if m.dragging {
		delta = float64(x - m.lastX)
	}
	m.dragging = true
	m.lastX = x
	return delta, true
}

func (e *EbitenRenderer) intent() engineinput.Intent {
	in := engineinput.IntentFromCodes(keyCodes(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	x, _ := ebiten.CursorPosition()
	in.YawDelta, in.Dragging = e.mouse.update(x, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return in
}
