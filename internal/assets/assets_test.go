package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/flappy/internal/config"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"resources/sprites/bird.png":       {Data: encodePNG(t, 34, 24, color.NRGBA{250, 235, 20, 255})},
		"resources/sprites/pipe.png":       {Data: encodePNG(t, 52, 320, color.NRGBA{30, 200, 40, 255})},
		"resources/sprites/background.png": {Data: encodePNG(t, 600, 400, color.NRGBA{112, 197, 206, 255})},
	}
}

func TestLoad(t *testing.T) {
	set, err := Load(testFS(t), config.DefaultConfig().Assets)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if w, h := set.Bird.Size(); w != 34 || h != 24 {
		t.Errorf("bird size = %dx%d, expected 34x24", w, h)
	}
	if w, h := set.Pipe.Size(); w != 52 || h != 320 {
		t.Errorf("pipe size = %dx%d, expected 52x320", w, h)
	}
	if set.Pipe.Tint != (color.RGBA{30, 200, 40, 255}) {
		t.Errorf("pipe tint = %v, expected solid pipe color", set.Pipe.Tint)
	}
	if set.Background.Name != "background" {
		t.Errorf("background name = %q", set.Background.Name)
	}
}

func TestLoadMissingSprite(t *testing.T) {
	fsys := testFS(t)
	delete(fsys, "resources/sprites/pipe.png")

	if _, err := Load(fsys, config.DefaultConfig().Assets); err == nil {
		t.Fatal("Load() should fail when a sprite is missing")
	}
}

func TestLoadCorruptSprite(t *testing.T) {
	fsys := testFS(t)
	fsys["resources/sprites/bird.png"] = &fstest.MapFile{Data: []byte("not a png")}

	if _, err := Load(fsys, config.DefaultConfig().Assets); err == nil {
		t.Fatal("Load() should fail on undecodable data")
	}
}

func TestLoadDirShippedSprites(t *testing.T) {
	set, err := LoadDir("../..", config.DefaultConfig().Assets)
	if err != nil {
		t.Fatalf("LoadDir() of the repository sprites failed: %v", err)
	}
	if w, h := set.Pipe.Size(); w != 52 || h != 320 {
		t.Errorf("shipped pipe sprite = %dx%d, expected 52x320 to match the default config", w, h)
	}
}

func TestAverageColorIgnoresTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{200, 100, 50, 255})
	img.Set(1, 0, color.NRGBA{0, 0, 0, 0})

	got := averageColor(img)
	if got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("averageColor() = %v, expected opaque pixel only", got)
	}

	if got := averageColor(image.NewNRGBA(image.Rect(0, 0, 1, 1))); got.A != 0 {
		t.Errorf("fully transparent image should have zero tint, got %v", got)
	}
}
