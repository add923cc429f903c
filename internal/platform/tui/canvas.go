package tui

import (
	"math"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Glyphs used to draw sprites in the terminal.
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// spriteStyle is the world size and terminal color of one sprite.
type spriteStyle struct {
	w, h  float64
	color core.Color
}

// ScreenCanvas draws the game's world-pixel draw calls onto a character
// screen. World coordinates are scaled independently on each axis so the
// whole window fits the terminal.
type ScreenCanvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
	styles map[flappy.Sprite]spriteStyle
}

// NewScreenCanvas creates a canvas for the given world configuration.
// Sprite colors are the average tint of each loaded image as a hex color,
// which lipgloss downsamples to the terminal's profile when rendering. A nil
// set or a fully transparent sprite falls back to fixed ANSI colors.
func NewScreenCanvas(screen *core.Screen, cfg config.Config, sprites *assets.Set) *ScreenCanvas {
	styles := map[flappy.Sprite]spriteStyle{
		flappy.SpriteBackground: {w: cfg.Window.Width, h: cfg.Window.Height, color: core.ColorDefault},
		flappy.SpritePipe:       {w: cfg.Pipes.Width, h: cfg.Pipes.Height, color: core.ColorGreen},
		flappy.SpriteBird:       {w: cfg.Bird.Width, h: cfg.Bird.Height, color: core.ColorBrightYellow},
	}
	if sprites != nil {
		tint := func(id flappy.Sprite, s *assets.Sprite) {
			if s == nil {
				return
			}
			c, ok := colorful.MakeColor(s.Tint)
			if !ok {
				return
			}
			st := styles[id]
			st.color = core.Color(c.Hex())
			styles[id] = st
		}
		tint(flappy.SpritePipe, sprites.Pipe)
		tint(flappy.SpriteBird, sprites.Bird)
	}

	return &ScreenCanvas{
		screen: screen,
		worldW: cfg.Window.Width,
		worldH: cfg.Window.Height,
		styles: styles,
	}
}

// Screen returns the underlying character buffer.
func (c *ScreenCanvas) Screen() *core.Screen {
	return c.screen
}

// cellX converts a world x coordinate to a column.
func (c *ScreenCanvas) cellX(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width()) / c.worldW))
}

// cellY converts a world y coordinate to a row.
func (c *ScreenCanvas) cellY(y float64) int {
	return int(math.Floor(y * float64(c.screen.Height()) / c.worldH))
}

// cellRect converts a world rectangle to cell bounds. Any non-empty world
// rectangle covers at least one cell.
func (c *ScreenCanvas) cellRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = c.cellX(x), c.cellY(y)
	x1 = int(math.Ceil((x + w) * float64(c.screen.Width()) / c.worldW))
	y1 = int(math.Ceil((y + h) * float64(c.screen.Height()) / c.worldH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawSprite implements flappy.Canvas.
func (c *ScreenCanvas) DrawSprite(s flappy.Sprite, x, y float64, opts flappy.DrawOptions) {
	st, ok := c.styles[s]
	if !ok {
		return
	}

	switch s {
	case flappy.SpriteBackground:
		c.screen.Clear()

	case flappy.SpritePipe:
		x0, y0, x1, y1 := c.cellRect(x, y, st.w, st.h)
		c.screen.DrawRectColored(x0, y0, x1-x0, y1-y0, PipeChar, st.color)
		// The cap sits on the edge facing the gap
		if opts.FlipY {
			c.screen.DrawRectColored(x0, y1-1, x1-x0, 1, PipeCapTop, st.color)
		} else {
			c.screen.DrawRectColored(x0, y0, x1-x0, 1, PipeCapBottom, st.color)
		}

	case flappy.SpriteBird:
		x0, y0, x1, y1 := c.cellRect(x, y, st.w, st.h)
		c.screen.DrawRectColored(x0, y0, x1-x0, y1-y0, BirdChar, st.color)
		c.screen.SetColored(x1-1, y0, BirdBeakChar, st.color)
	}
}

// DrawText implements flappy.Canvas.
func (c *ScreenCanvas) DrawText(x, y float64, text string) {
	c.screen.DrawTextColored(c.cellX(x), c.cellY(y), text, core.ColorBrightWhite)
}

// DrawOverlay implements flappy.Canvas with a centred box.
func (c *ScreenCanvas) DrawOverlay(title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (c.screen.Width() - boxW) / 2
	boxY := (c.screen.Height() - boxH) / 2

	c.screen.DrawRect(boxX, boxY, boxW, boxH, ' ')
	c.screen.DrawBox(boxX, boxY, boxW, boxH)

	c.screen.DrawTextCentered(boxY+1, title)
	c.screen.DrawTextCentered(boxY+3, subtitle)
}
