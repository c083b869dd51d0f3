package platform

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
type FramebufferResize struct {
	Width  int
	Height int
}

// KeyEscape matches the windowing library's escape key code.
const KeyEscape = 256
