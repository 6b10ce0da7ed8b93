package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkoffice/pkg/engine/world"
	"darkoffice/pkg/game/gameplay"
	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
)

// fogCells is the distance, in cells, at which walls reach their dimmest.
const fogCells = 12

// hudLineHeight matches the debug font's glyph height plus spacing.
const hudLineHeight = 16

func (e *EbitenRenderer) drawFrame(screen *ebiten.Image, f projector.Frame) {
	w, h := float32(f.Width), float32(f.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, renderer.ColorSky, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h-h/2, renderer.ColorFloor, false)

	for _, s := range f.Floor {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), 1, renderer.ColorGoal, false)
	}
	for _, s := range f.Walls {
		e.drawWall(screen, s)
	}
	for _, s := range f.Sprites {
		e.drawSprite(screen, s)
	}
	if f.Minimap != nil {
		drawMinimap(screen, f.Minimap)
	}
}

// drawWall stretches one texture column over the slice.
func (e *EbitenRenderer) drawWall(screen *ebiten.Image, s projector.WallSlice) {
	tex := e.textures.get(s.Texture)
	if tex == nil || s.Height <= 0 {
		return
	}
	col := min(int(s.U*texSize), texSize-1)
	column := tex.SubImage(image.Rect(col, 0, col+1, texSize)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.Width), s.Height/texSize)
	op.GeoM.Translate(float64(s.X), s.Top)
	brightness := float32(s.Tint * wallFog(s.Distance, e.view.CellSize))
	op.ColorScale.Scale(brightness, brightness, brightness, 1.0)
	screen.DrawImage(column, op)
}

// wallFog dims walls linearly with distance, never below 0.25.
func wallFog(distance, cellSize float64) float64 {
	return math.Max(0.25, 1-distance/(fogCells*cellSize))
}

func (e *EbitenRenderer) drawSprite(screen *ebiten.Image, s projector.Sprite) {
	tex := e.textures.get(s.Texture)
	if tex == nil || s.Size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Size/texSize, s.Size/texSize)
	op.GeoM.Translate(s.X, s.Y)
	brightness := float32(wallFog(s.Distance, e.view.CellSize))
	op.ColorScale.Scale(brightness, brightness, brightness, 1.0)
	screen.DrawImage(tex, op)
}

func drawMinimap(screen *ebiten.Image, m *projector.MinimapView) {
	p := m.Panel
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), renderer.ColorPanel, false)
	for _, t := range m.Tiles {
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Size), float32(t.Size), renderer.MinimapColor(t.Kind), false)
	}
	for _, g := range m.Guards {
		c := renderer.ColorGuard1
		if g.Kind == world.Guard2 {
			c = renderer.ColorGuard2
		}
		vector.DrawFilledCircle(screen, float32(g.X), float32(g.Y), 3, c, true)
	}

	line := func(ax, ay, bx, by float64, c color.Color) {
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, c, true)
	}
	line(m.Player.X, m.Player.Y, m.FOVLeft.X, m.FOVLeft.Y, renderer.ColorFOVLine)
	line(m.Player.X, m.Player.Y, m.FOVRight.X, m.FOVRight.Y, renderer.ColorFOVLine)
	line(m.Tip.X, m.Tip.Y, m.Left.X, m.Left.Y, renderer.ColorPlayer)
	line(m.Left.X, m.Left.Y, m.Right.X, m.Right.Y, renderer.ColorPlayer)
	line(m.Right.X, m.Right.Y, m.Tip.X, m.Tip.Y, renderer.ColorPlayer)
}

// drawHUD prints the status lines under the minimap and the message log
// at the bottom of the screen.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	y := 10
	if m := e.frame.Minimap; m != nil {
		y = int(m.Panel.Y+m.Panel.H) + 6
	}
	for _, line := range gameplay.HUDLines(e.game) {
		ebitenutil.DebugPrintAt(screen, line, 10, y)
		y += hudLineHeight
	}

	msgs := e.game.Messages
	base := e.view.Height - 10 - len(msgs)*hudLineHeight
	for i, msg := range msgs {
		ebitenutil.DebugPrintAt(screen, msg, 10, base+i*hudLineHeight)
	}
}
