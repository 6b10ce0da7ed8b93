package tui

import (
	"sort"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/projector"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "key_w"},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "key_w"},
		{tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), ","},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "arrow_left"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone), "f9"},
	}
	for _, tt := range tests {
		if got := keyCode(tt.ev); got != tt.want {
			t.Errorf("keyCode(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestKeyState_HoldWindow(t *testing.T) {
	k := newKeyState()
	start := time.Unix(100, 0)

	k.press("key_w", start)
	k.press("enter", start)

	got := k.codes(start.Add(50 * time.Millisecond))
	sort.Strings(got)
	if len(got) != 2 || got[0] != "enter" || got[1] != "key_w" {
		t.Fatalf("codes() = %v, want [enter key_w]", got)
	}

	got = k.codes(start.Add(100 * time.Millisecond))
	if len(got) != 1 || got[0] != "key_w" {
		t.Errorf("second codes() = %v, want only the held key", got)
	}

	if got = k.codes(start.Add(holdWindow + time.Millisecond)); len(got) != 0 {
		t.Errorf("codes() after the hold window = %v, want none", got)
	}
}

func TestMouseState_Drag(t *testing.T) {
	var m mouseState

	m.move(10, true, 2)
	m.move(15, true, 2)
	yaw, dragging := m.take()
	if yaw != 10 || !dragging {
		t.Errorf("take() = %v, %v, want 10, true", yaw, dragging)
	}

	m.move(20, false, 2)
	yaw, dragging = m.take()
	if yaw != 0 || dragging {
		t.Errorf("take() after release = %v, %v, want 0, false", yaw, dragging)
	}
}

func TestDraw_SimulationScreen(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	cfg := config.Default()
	r := NewWithScreen(cfg, ss)
	if err := r.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer r.Close()

	grid, err := world.ParseString("+++++\n+ f +\n+  g+\n+++++")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	g := gameplay.NewLevel(grid, cfg)

	frame := projector.ProjectGame(g, r.view)
	r.draw(g, frame)

	if r.Name() != "tui" {
		t.Errorf("Name() = %q", r.Name())
	}
}
