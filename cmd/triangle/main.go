// Command triangle opens a window and draws a single pulsing triangle
// until the window is closed or escape is pressed.
package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/chewxy/math32"

	_ "github.com/kjkrol/gokgl/internal/gldevice"
	"github.com/kjkrol/gokgl/pkg/gfx"
)

func init() {
	// The windowing library and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		gfx.Logger().Error("triangle demo failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	window, err := gfx.OpenWindow(gfx.WindowConfig{
		Width:  640,
		Height: 480,
		Title:  "Hello World",
	})
	if err != nil {
		return err
	}
	defer gfx.Terminate()
	defer window.Close()

	dev, err := gfx.Default()
	if err != nil {
		return err
	}
	gfx.Logger().Info("device ready", "version", dev.Version())

	mesh := gfx.Triangle()
	buffer, err := mesh.Upload(dev)
	if err != nil {
		return err
	}
	defer dev.DeleteBuffer(buffer)

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	if err != nil {
		return err
	}
	defer program.Delete()

	colorLoc := program.UniformLocation("uColor")

	loop := gfx.Loop{
		Surface:     window,
		Device:      dev,
		Program:     program,
		VertexCount: mesh.VertexCount(),
		ClearColor:  [4]float32{0.2, 0.2, 0.3, 1.0},
		OnFrame: func(frame int) {
			r := 0.5 + 0.5*math32.Sin(float32(frame)*0.02)
			dev.SetUniform4f(colorLoc, r, 0.1, 0.2, 1.0)
			for {
				event, ok := window.NextEvent()
				if !ok {
					break
				}
				if key, ok := event.(gfx.KeyPress); ok && key.Key == gfx.KeyEscape {
					window.RequestClose()
				}
			}
		},
	}
	return loop.Run(context.Background())
}
