package platform

// Config describes the window requested from the windowing library.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// Window is the windowing collaborator surface consumed by pkg/gfx:
// a close flag, buffer presentation, non-blocking event polling and
// teardown. Nothing else crosses the boundary.
type Window interface {
	ShouldClose() bool
	RequestClose()
	SwapBuffers()
	PollEvents()
	NextEvent() (Event, bool)
	Size() (int, int)
	Destroy()
}
