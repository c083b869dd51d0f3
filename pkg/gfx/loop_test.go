package gfx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokgl/pkg/gfx"
	"github.com/kjkrol/gokgl/pkg/gfx/gfxtest"
)

func TestLoopDrawsOncePerFrame(t *testing.T) {
	dev := gfxtest.NewDevice()
	surface := &gfxtest.FakeSurface{CloseAfter: 3}

	loop := gfx.Loop{
		Surface:     surface,
		Device:      dev,
		VertexCount: 3,
		ClearColor:  [4]float32{0.2, 0.2, 0.3, 1.0},
	}
	require.NoError(t, loop.Run(context.Background()))

	// One clear, one draw over the full vertex range, one present and one
	// poll per frame; the loop stops within one iteration of the close flag.
	require.Len(t, dev.DrawCalls, 3)
	for _, call := range dev.DrawCalls {
		assert.Equal(t, gfxtest.DrawCall{First: 0, Count: 3}, call)
	}
	assert.Len(t, dev.Clears, 3)
	assert.Equal(t, [4]float32{0.2, 0.2, 0.3, 1.0}, dev.Clears[0])
	assert.Equal(t, 3, surface.Swaps)
	assert.Equal(t, 3, surface.Polls)
}

func TestLoopBindsProgramOnce(t *testing.T) {
	dev := gfxtest.NewDevice()
	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.NoError(t, err)

	loop := gfx.Loop{
		Surface:     &gfxtest.FakeSurface{CloseAfter: 1},
		Device:      dev,
		Program:     program,
		VertexCount: 3,
	}
	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, program.Handle(), dev.ActiveProgram)
}

func TestLoopRunsFrameFunc(t *testing.T) {
	dev := gfxtest.NewDevice()
	frames := []int{}

	loop := gfx.Loop{
		Surface:     &gfxtest.FakeSurface{CloseAfter: 2},
		Device:      dev,
		VertexCount: 3,
		OnFrame:     func(frame int) { frames = append(frames, frame) },
	}
	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []int{0, 1}, frames)
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	dev := gfxtest.NewDevice()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := gfx.Loop{
		Surface:     &gfxtest.FakeSurface{CloseAfter: 1 << 30},
		Device:      dev,
		VertexCount: 3,
	}
	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dev.DrawCalls)
}

func TestLoopRequiresSetup(t *testing.T) {
	err := (&gfx.Loop{}).Run(context.Background())
	require.ErrorIs(t, err, gfx.ErrNotInitialized)

	err = (&gfx.Loop{Surface: &gfxtest.FakeSurface{}}).Run(context.Background())
	require.ErrorIs(t, err, gfx.ErrNotInitialized)
}
