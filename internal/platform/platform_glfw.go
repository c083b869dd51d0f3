package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const eventBuffer = 256

var initialized bool

// Open initializes the windowing library on first use, creates a window
// with a 3.3 core rendering context and makes the context current on the
// calling thread. The caller must be locked to an OS thread.
func Open(conf Config) (Window, error) {
	if !initialized {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("glfw init: %w", err)
		}
		initialized = true
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	resizable := glfw.False
	if conf.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindow{win: win, events: make(chan Event, eventBuffer)}
	win.SetKeyCallback(w.onKey)
	win.SetCloseCallback(func(*glfw.Window) { w.emit(CloseRequest{}) })
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.emit(Resize{Width: width, Height: height})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.emit(FramebufferResize{Width: width, Height: height})
	})
	return w, nil
}

// Terminate shuts the windowing library down. No window may be used
// afterwards.
func Terminate() {
	if !initialized {
		return
	}
	glfw.Terminate()
	initialized = false
}

type glfwWindow struct {
	win    *glfw.Window
	events chan Event
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) RequestClose() {
	w.win.SetShouldClose(true)
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) NextEvent() (Event, bool) {
	select {
	case event := <-w.events:
		return event, true
	default:
		return nil, false
	}
}

func (w *glfwWindow) Size() (int, int) {
	return w.win.GetSize()
}

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.emit(KeyPress{Key: int(key), Scancode: scancode})
	case glfw.Release:
		w.emit(KeyRelease{Key: int(key), Scancode: scancode})
	}
}

func (w *glfwWindow) emit(event Event) {
	select {
	case w.events <- event:
	default:
		// drop if buffer full to avoid blocking the callback
	}
}
