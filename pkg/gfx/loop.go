package gfx

import (
	"context"
	"runtime"
)

// Surface is the part of the window the frame loop needs: a close flag,
// buffer presentation and event polling.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// FrameFunc runs once per frame before the draw call, with the frame
// counter starting at zero.
type FrameFunc func(frame int)

// Loop is the frame driver: once setup completed it issues one
// clear+draw+present cycle per iteration until the surface reports a close
// request or the context is cancelled.
type Loop struct {
	Surface     Surface
	Device      Device
	Program     *Program
	VertexCount int
	ClearColor  [4]float32
	OnFrame     FrameFunc
}

// Run drives the loop on the calling goroutine, locked to its OS thread.
// The close flag is checked once per iteration, after event polling, so the
// loop terminates within one cycle of a close request. Returns ctx.Err()
// when cancelled, nil on a regular close.
func (l *Loop) Run(ctx context.Context) error {
	if l.Surface == nil || l.Device == nil {
		return ErrNotInitialized
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if l.Program != nil {
		l.Program.Use()
	}

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if l.Surface.ShouldClose() {
			return nil
		}

		c := l.ClearColor
		l.Device.Clear(c[0], c[1], c[2], c[3])
		if l.OnFrame != nil {
			l.OnFrame(frame)
		}
		l.Device.DrawTriangles(0, l.VertexCount)
		l.Surface.SwapBuffers()
		l.Surface.PollEvents()
		frame++
	}
}
