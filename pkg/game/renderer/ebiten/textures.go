package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"darkoffice/pkg/game/projector"
	"darkoffice/pkg/game/renderer"
)

const texSize = 64

// textureSet holds the procedural images for every projector texture.
type textureSet struct {
	images map[projector.Texture]*ebiten.Image
}

func newTextureSet() *textureSet {
	ts := &textureSet{images: make(map[projector.Texture]*ebiten.Image)}
	for _, t := range []projector.Texture{
		projector.WallA, projector.WallB,
		projector.FolderTex, projector.Guard1Tex, projector.Guard2Tex,
	} {
		ts.images[t] = ebiten.NewImageFromImage(paintTexture(t))
	}
	return ts
}

func (ts *textureSet) get(t projector.Texture) *ebiten.Image {
	return ts.images[t]
}

// paintTexture draws a texSize square image for t.
func paintTexture(t projector.Texture) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	base := renderer.TextureColor(t)
	switch t {
	case projector.WallA:
		paintBricks(img, base)
	case projector.WallB:
		paintPanels(img, base)
	case projector.FolderTex:
		paintFolder(img, base)
	default:
		paintGuard(img, base)
	}
	return img
}

// paintBricks lays 16x8 bricks with mortar lines, offset every other course.
func paintBricks(img *image.RGBA, base color.RGBA) {
	mortar := renderer.Shade(base, 0.55)
	for y := 0; y < texSize; y++ {
		offset := 0
		if (y/8)%2 == 1 {
			offset = 8
		}
		for x := 0; x < texSize; x++ {
			c := base
			if y%8 == 0 || (x+offset)%16 == 0 {
				c = mortar
			} else if (x*7+y*13)%11 == 0 {
				c = renderer.Shade(base, 0.85)
			}
			img.SetRGBA(x, y, c)
		}
	}
}

// paintPanels draws office wall panels: two wide boards with a dark seam
// and a skirting strip at the bottom.
func paintPanels(img *image.RGBA, base color.RGBA) {
	seam := renderer.Shade(base, 0.5)
	skirting := renderer.Shade(base, 0.7)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			c := base
			switch {
			case y >= texSize-6:
				c = skirting
			case x == 0 || x == texSize/2:
				c = seam
			case x == 1 || x == texSize/2+1:
				c = renderer.Shade(base, 0.85)
			}
			img.SetRGBA(x, y, c)
		}
	}
}

// paintFolder draws a document folder with a tab, centred near the bottom.
func paintFolder(img *image.RGBA, base color.RGBA) {
	edge := renderer.Shade(base, 0.6)
	for y := 24; y < 56; y++ {
		for x := 12; x < 52; x++ {
			c := base
			if y == 24 || y == 55 || x == 12 || x == 51 {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	for y := 18; y < 24; y++ {
		for x := 12; x < 28; x++ {
			img.SetRGBA(x, y, base)
		}
	}
}

// paintGuard draws a round head over a trapezoid body.
func paintGuard(img *image.RGBA, base color.RGBA) {
	dark := renderer.Shade(base, 0.6)
	const cx, cy, r = 32, 14, 9
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx, dy := x-cx, y-cy
			switch {
			case dx*dx+dy*dy <= r*r:
				img.SetRGBA(x, y, base)
			case y >= 24 && y < texSize:
				half := 10 + (y-24)/3
				if x >= cx-half && x < cx+half {
					c := base
					if x == cx || y == 24 {
						c = dark
					}
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}
