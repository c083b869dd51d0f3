package gfx

import (
	"github.com/kjkrol/gokgl/internal/platform"
)

// WindowConfig describes the demo window. Zero width or height fall back
// to 640x480.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

func (c WindowConfig) convert() platform.Config {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	return platform.Config{Width: width, Height: height, Title: c.Title, Resizable: c.Resizable}
}

// Window owns the single window+context handle for the process lifetime.
// It satisfies the loop's Surface interface.
type Window struct {
	platformWin platform.Window
}

// OpenWindow acquires a window and rendering context from the windowing
// collaborator and makes the context current. Must run on the main OS
// thread. A device (see Default) can only be created once this succeeded.
func OpenWindow(conf WindowConfig) (*Window, error) {
	pw, err := platform.Open(conf.convert())
	if err != nil {
		return nil, err
	}
	return &Window{platformWin: pw}, nil
}

// Terminate shuts the windowing collaborator down at process exit.
func Terminate() {
	platform.Terminate()
}

func (w *Window) ShouldClose() bool {
	return w.platformWin.ShouldClose()
}

// RequestClose asks the loop to terminate at the next close check.
func (w *Window) RequestClose() {
	w.platformWin.RequestClose()
}

func (w *Window) SwapBuffers() {
	w.platformWin.SwapBuffers()
}

func (w *Window) PollEvents() {
	w.platformWin.PollEvents()
}

// NextEvent drains one pending input event without blocking.
func (w *Window) NextEvent() (Event, bool) {
	platformEvent, ok := w.platformWin.NextEvent()
	if !ok {
		return nil, false
	}
	return convert(platformEvent), true
}

func (w *Window) Size() (int, int) {
	return w.platformWin.Size()
}

// Close destroys the window. The window must not be used afterwards.
func (w *Window) Close() {
	if w == nil || w.platformWin == nil {
		return
	}
	w.platformWin.Destroy()
	w.platformWin = nil
}
