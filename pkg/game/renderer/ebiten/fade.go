package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// endDim is how dark the view gets behind the end-of-level text.
const endDim = 0.6

// fader tweens a black overlay: in from black when a level starts, and
// down to a dim veil when it ends.
type fader struct {
	seconds float32
	tween   *gween.Tween
	alpha   float32
	ended   bool
}

func newFader(seconds float32) *fader {
	return &fader{seconds: seconds}
}

func (f *fader) levelStarted() {
	f.ended = false
	f.start(1, 0, ease.OutQuad)
}

func (f *fader) start(from, to float32, fn ease.TweenFunc) {
	if f.seconds <= 0 {
		f.tween = nil
		f.alpha = to
		return
	}
	f.alpha = from
	f.tween = gween.New(from, to, f.seconds, fn)
}

// update advances the tween and starts the end fade the first tick the
// level is over.
func (f *fader) update(dt float32, over bool) {
	if over && !f.ended {
		f.ended = true
		f.start(f.alpha, endDim, ease.InQuad)
	}
	if f.tween == nil {
		return
	}
	alpha, done := f.tween.Update(dt)
	f.alpha = alpha
	if done {
		f.tween = nil
	}
}

func (f *fader) draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: uint8(f.alpha * 255)}, false)
}
