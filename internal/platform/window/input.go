package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
)

// keyBinding maps a physical key to a game action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings lists the window host controls.
var keyBindings = []keyBinding{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
}

// frameFrom builds an input frame from an edge-triggered key query.
func frameFrom(justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if justPressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}

// PollInput returns the actions whose keys went down this frame.
func PollInput() core.InputFrame {
	return frameFrom(inpututil.IsKeyJustPressed)
}
