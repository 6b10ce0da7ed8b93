package state

import (
	"fmt"
	"testing"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/config"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(world.NewGrid(1, 1), config.Default())
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 || g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("Messages after ClearMessages = %v, want empty", g.Messages)
	}
}

func TestOver(t *testing.T) {
	g := NewGame(world.NewGrid(1, 1), config.Default())
	if g.Over() {
		t.Error("Over() on a fresh game = true, want false")
	}
	g.Caught = true
	if !g.Over() {
		t.Error("Over() after Caught = false, want true")
	}
	if g.CellSize() != 64 {
		t.Errorf("CellSize() = %v, want 64", g.CellSize())
	}
}
