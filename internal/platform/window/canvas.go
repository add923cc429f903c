package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var (
	overlayFill   = color.RGBA{0, 0, 0, 170}
	overlayBorder = color.RGBA{255, 255, 255, 255}
)

// Canvas draws the game's sprites onto an Ebitengine image.
type Canvas struct {
	target *ebiten.Image
	images map[flappy.Sprite]*ebiten.Image
}

// NewCanvas uploads the loaded sprites as Ebitengine images.
func NewCanvas(sprites *assets.Set) *Canvas {
	return &Canvas{
		images: map[flappy.Sprite]*ebiten.Image{
			flappy.SpriteBackground: ebiten.NewImageFromImage(sprites.Background.Image),
			flappy.SpritePipe:       ebiten.NewImageFromImage(sprites.Pipe.Image),
			flappy.SpriteBird:       ebiten.NewImageFromImage(sprites.Bird.Image),
		},
	}
}

// SetTarget sets the image the next draw calls render to.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.target = dst
}

// spriteGeoM positions a sprite of height h with its top-left corner at
// (x, y). A flipped sprite is mirrored vertically within the same box.
func spriteGeoM(x, y, h float64, flipY bool) ebiten.GeoM {
	var m ebiten.GeoM
	if flipY {
		m.Scale(1, -1)
		m.Translate(0, h)
	}
	m.Translate(x, y)
	return m
}

// DrawSprite implements flappy.Canvas.
func (c *Canvas) DrawSprite(s flappy.Sprite, x, y float64, opts flappy.DrawOptions) {
	img, ok := c.images[s]
	if !ok || c.target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(x, y, float64(img.Bounds().Dy()), opts.FlipY)
	c.target.DrawImage(img, op)
}

// DrawText implements flappy.Canvas.
func (c *Canvas) DrawText(x, y float64, text string) {
	if c.target == nil {
		return
	}
	ebitenutil.DebugPrintAt(c.target, text, int(x), int(y))
}

// DrawOverlay implements flappy.Canvas with a translucent centred box.
func (c *Canvas) DrawOverlay(title, subtitle string) {
	if c.target == nil {
		return
	}
	b := c.target.Bounds()
	w, h := b.Dx(), b.Dy()

	boxW := (max(len(title), len(subtitle)) + 4) * glyphW
	boxW = min(boxW, w)
	boxH := 4 * glyphH
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	vector.DrawFilledRect(c.target, float32(boxX), float32(boxY), float32(boxW), float32(boxH), overlayFill, false)
	vector.StrokeRect(c.target, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 1, overlayBorder, false)

	ebitenutil.DebugPrintAt(c.target, title, (w-len(title)*glyphW)/2, boxY+glyphH/2)
	ebitenutil.DebugPrintAt(c.target, subtitle, (w-len(subtitle)*glyphW)/2, boxY+2*glyphH)
}
