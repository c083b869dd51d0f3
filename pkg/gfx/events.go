package gfx

import "github.com/kjkrol/gokgl/internal/platform"

type Event interface{}

type KeyPress struct {
	Key      int
	Scancode int
}
type KeyRelease struct {
	Key      int
	Scancode int
}
type CloseRequest struct{}
type Resize struct {
	Width  int
	Height int
}
type UnexpectedEvent struct{}

// KeyEscape is the key code reported for the escape key.
const KeyEscape = platform.KeyEscape

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Key: e.Key, Scancode: e.Scancode}
	case platform.KeyRelease:
		return KeyRelease{Key: e.Key, Scancode: e.Scancode}
	case platform.CloseRequest:
		return CloseRequest{}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	case platform.FramebufferResize:
		return Resize{Width: e.Width, Height: e.Height}
	default:
		return UnexpectedEvent{}
	}
}
