package ebiten

import (
	"math"
	"sort"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
)

func TestKeyCodes(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowLeft: true, ebiten.KeyEnter: true}
	just := map[ebiten.Key]bool{ebiten.KeyEnter: true}

	got := keyCodes(
		func(k ebiten.Key) bool { return down[k] },
		func(k ebiten.Key) bool { return just[k] },
	)
	sort.Strings(got)

	want := []string{"arrow_left", "enter", "key_w"}
	if len(got) != len(want) {
		t.Fatalf("keyCodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyCodes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeyCodes_HeldEnterDoesNotRepeat(t *testing.T) {
	got := keyCodes(
		func(k ebiten.Key) bool { return k == ebiten.KeyEnter },
		func(ebiten.Key) bool { return false },
	)
	if len(got) != 0 {
		t.Errorf("keyCodes() = %v, want none", got)
	}
}

func TestMouseDrag(t *testing.T) {
	var m mouseDrag

	if d, dragging := m.update(100, true); d != 0 || !dragging {
		t.Errorf("first update = %v, %v, want 0, true", d, dragging)
	}
	if d, _ := m.update(112, true); d != 12 {
		t.Errorf("drag delta = %v, want 12", d)
	}
	if d, dragging := m.update(150, false); d != 0 || dragging {
		t.Errorf("released = %v, %v, want 0, false", d, dragging)
	}
}

func TestFader(t *testing.T) {
	f := newFader(0.5)
	f.levelStarted()
	if f.alpha != 1 {
		t.Fatalf("alpha at level start = %v, want 1", f.alpha)
	}

	for i := 0; i < 60; i++ {
		f.update(1.0/60, false)
	}
	if f.alpha != 0 || f.tween != nil {
		t.Errorf("after fade-in alpha = %v, tween = %v, want 0, nil", f.alpha, f.tween)
	}

	for i := 0; i < 60; i++ {
		f.update(1.0/60, true)
	}
	if math.Abs(float64(f.alpha)-endDim) > 1e-6 {
		t.Errorf("after level end alpha = %v, want %v", f.alpha, endDim)
	}
}

func TestFader_Disabled(t *testing.T) {
	f := newFader(0)
	f.levelStarted()
	if f.alpha != 0 {
		t.Errorf("alpha = %v, want 0 without a fade", f.alpha)
	}
}

func TestPaintTexture(t *testing.T) {
	folder := paintTexture(projector.FolderTex)
	if _, _, _, a := folder.At(0, 0).RGBA(); a != 0 {
		t.Error("sprite corners should be transparent")
	}
	if got := folder.RGBAAt(30, 40); got != renderer.ColorFolder {
		t.Errorf("folder body = %v, want %v", got, renderer.ColorFolder)
	}

	wall := paintTexture(projector.WallA)
	if _, _, _, a := wall.At(5, 5).RGBA(); a == 0 {
		t.Error("wall textures are opaque")
	}
}

func TestWallFog(t *testing.T) {
	if got := wallFog(0, 64); got != 1 {
		t.Errorf("wallFog(0) = %v, want 1", got)
	}
	if got := wallFog(1e6, 64); got != 0.25 {
		t.Errorf("wallFog(far) = %v, want 0.25", got)
	}
}
