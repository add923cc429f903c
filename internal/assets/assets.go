// Package assets loads the game's sprite images.
// Sprites are decoded once at startup; any failure aborts before the first
// frame is simulated.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder for image.Decode
	"io/fs"
	"os"

	"github.com/vovakirdan/flappy/internal/config"
)

// Sprite is a decoded image together with its average visible color.
type Sprite struct {
	Name  string
	Image image.Image
	Tint  color.RGBA
}

// Size returns the sprite dimensions in pixels.
func (s *Sprite) Size() (w, h int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Set holds the three sprites the game draws.
type Set struct {
	Bird       *Sprite
	Pipe       *Sprite
	Background *Sprite
}

// Load decodes the bird, pipe and background sprites from fsys.
// Paths are relative to the root of fsys.
func Load(fsys fs.FS, paths config.Assets) (*Set, error) {
	bird, err := loadSprite(fsys, "bird", paths.Bird)
	if err != nil {
		return nil, err
	}
	pipe, err := loadSprite(fsys, "pipe", paths.Pipe)
	if err != nil {
		return nil, err
	}
	background, err := loadSprite(fsys, "background", paths.Background)
	if err != nil {
		return nil, err
	}
	return &Set{Bird: bird, Pipe: pipe, Background: background}, nil
}

// LoadDir loads sprites from a directory on disk.
func LoadDir(dir string, paths config.Assets) (*Set, error) {
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), paths)
}

func loadSprite(fsys fs.FS, name, path string) (*Sprite, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s (%s): %w", name, path, err)
	}

	return &Sprite{
		Name:  name,
		Image: img,
		Tint:  averageColor(img),
	}, nil
}

// averageColor returns the mean color of all non-transparent pixels.
func averageColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < 128 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
