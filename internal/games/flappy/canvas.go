package flappy

// Sprite identifies one of the images the game draws.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpritePipe
	SpriteBird
)

// String returns the sprite's asset name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpritePipe:
		return "pipe"
	case SpriteBird:
		return "bird"
	default:
		return "unknown"
	}
}

// DrawOptions carries the optional transform of a draw call.
type DrawOptions struct {
	FlipY bool // Mirror the sprite vertically around its own centre
}

// Canvas is the draw-call surface a host provides each frame.
// Coordinates are window pixels with the origin at the top-left.
type Canvas interface {
	// DrawSprite draws a sprite with its top-left corner at (x, y).
	DrawSprite(s Sprite, x, y float64, opts DrawOptions)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string)

	// DrawOverlay draws a centred message box on top of everything else.
	DrawOverlay(title, subtitle string)
}
