package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// The default 267x400 world on an 80x24 terminal.
func newTestCanvas() *ScreenCanvas {
	return NewScreenCanvas(core.NewScreen(80, 24), config.DefaultConfig(), nil)
}

func TestCanvasBottomPipe(t *testing.T) {
	c := newTestCanvas()
	c.DrawSprite(flappy.SpritePipe, 100, 200, flappy.DrawOptions{})
	s := c.Screen()

	// x 100..152 maps to columns 29..45, y 200 maps to row 12
	if got := s.GetCell(29, 12).Rune; got != PipeCapBottom {
		t.Errorf("cap cell = %q, want %q", got, PipeCapBottom)
	}
	if got := s.GetCell(29, 13).Rune; got != PipeChar {
		t.Errorf("body cell = %q, want %q", got, PipeChar)
	}
	if got := s.GetCell(45, 23).Rune; got != PipeChar {
		t.Errorf("last column bottom row = %q, want %q", got, PipeChar)
	}
	if got := s.GetCell(28, 13).Rune; got != ' ' {
		t.Errorf("cell left of pipe = %q, want blank", got)
	}
	if got := s.GetCell(29, 11).Rune; got != ' ' {
		t.Errorf("cell above pipe = %q, want blank", got)
	}
	if got := s.GetCell(30, 15).Color; got != core.ColorGreen {
		t.Errorf("pipe color = %v, want ColorGreen", got)
	}
}

func TestCanvasFlippedTopPipe(t *testing.T) {
	c := newTestCanvas()
	// Lower edge at y=150, row 9
	c.DrawSprite(flappy.SpritePipe, 100, 150-320, flappy.DrawOptions{FlipY: true})
	s := c.Screen()

	if got := s.GetCell(29, 8).Rune; got != PipeCapTop {
		t.Errorf("cap cell = %q, want %q", got, PipeCapTop)
	}
	if got := s.GetCell(29, 0).Rune; got != PipeChar {
		t.Errorf("top row = %q, want %q", got, PipeChar)
	}
	if got := s.GetCell(29, 9).Rune; got != ' ' {
		t.Errorf("gap cell = %q, want blank", got)
	}
}

func TestCanvasBird(t *testing.T) {
	c := newTestCanvas()
	c.DrawSprite(flappy.SpriteBird, 100, 200, flappy.DrawOptions{})
	s := c.Screen()

	if got := s.GetCell(29, 12).Rune; got != BirdChar {
		t.Errorf("body cell = %q, want %q", got, BirdChar)
	}
	if got := s.GetCell(40, 12).Rune; got != BirdBeakChar {
		t.Errorf("beak cell = %q, want %q", got, BirdBeakChar)
	}
	if got := s.GetCell(41, 12).Rune; got != ' ' {
		t.Errorf("cell past beak = %q, want blank", got)
	}
	if got := s.GetCell(29, 12).Color; got != core.ColorBrightYellow {
		t.Errorf("bird color = %v, want ColorBrightYellow", got)
	}
}

func TestCanvasBackgroundClears(t *testing.T) {
	c := newTestCanvas()
	c.Screen().FillColored('x', core.ColorDefault)
	c.DrawSprite(flappy.SpriteBackground, 0, 0, flappy.DrawOptions{})

	if strings.ContainsRune(c.Screen().String(), 'x') {
		t.Error("background should clear the screen")
	}
}

func TestCanvasText(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(flappy.ScoreX, flappy.ScoreY, "Score: 3")

	if row := c.Screen().Row(0); !strings.HasPrefix(row, "  Score: 3") {
		t.Errorf("row 0 = %q, want score at column 2", row)
	}
}

func TestCanvasOverlay(t *testing.T) {
	c := newTestCanvas()
	c.DrawOverlay("GAME OVER", "Press R")
	out := c.Screen().String()

	for _, want := range []string{"GAME OVER", "Press R", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestCanvasTintFromSprites(t *testing.T) {
	solid := func(c color.RGBA) *assets.Sprite {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, c)
		return &assets.Sprite{Image: img, Tint: c}
	}
	set := &assets.Set{
		Bird: solid(color.RGBA{220, 0, 0, 255}),
		Pipe: solid(color.RGBA{0, 0, 240, 255}),
	}

	c := NewScreenCanvas(core.NewScreen(80, 24), config.DefaultConfig(), set)
	c.DrawSprite(flappy.SpritePipe, 0, 200, flappy.DrawOptions{})
	c.DrawSprite(flappy.SpriteBird, 100, 100, flappy.DrawOptions{})

	if got := c.Screen().GetCell(0, 20).Color; got != "#0000f0" {
		t.Errorf("pipe color = %q, want #0000f0", got)
	}
	if got := c.Screen().GetCell(29, 6).Color; got != "#dc0000" {
		t.Errorf("bird color = %q, want #dc0000", got)
	}
}

func TestCanvasTransparentSpriteKeepsDefault(t *testing.T) {
	transparent := color.RGBA{}
	set := &assets.Set{Pipe: &assets.Sprite{Image: image.NewRGBA(image.Rect(0, 0, 1, 1)), Tint: transparent}}

	c := NewScreenCanvas(core.NewScreen(80, 24), config.DefaultConfig(), set)
	c.DrawSprite(flappy.SpritePipe, 0, 200, flappy.DrawOptions{})

	if got := c.Screen().GetCell(0, 20).Color; got != core.ColorGreen {
		t.Errorf("pipe color = %q, want the default green", got)
	}
}

func TestCanvasOverlayCentred(t *testing.T) {
	c := newTestCanvas()
	c.DrawOverlay("GAME OVER", "Score: 3")

	// 80 columns, 9 runes: the title starts at column 35 on the row below
	// the box top. The box is 13 wide at rows 9..13 of 24.
	if row := []rune(c.Screen().Row(10)); string(row[35:44]) != "GAME OVER" {
		t.Errorf("title row = %q", string(row))
	}
	if got := c.Screen().GetCell(33, 9).Rune; got != '┌' {
		t.Errorf("box corner = %q, want ┌", got)
	}
}

func TestCanvasScalesWithResize(t *testing.T) {
	c := newTestCanvas()
	c.Screen().Resize(160, 48)
	c.DrawSprite(flappy.SpriteBird, 100, 200, flappy.DrawOptions{})

	// Twice the columns, twice the rows
	if got := c.Screen().GetCell(59, 24).Rune; got != BirdChar {
		t.Errorf("scaled bird cell = %q, want %q", got, BirdChar)
	}
}
