package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokgl/pkg/gfx"
	"github.com/kjkrol/gokgl/pkg/gfx/gfxtest"
)

func fakeFactory() (gfx.Device, error) {
	return gfxtest.NewDevice(), nil
}

func TestRegistry(t *testing.T) {
	const name = "fake-registry-test"
	gfx.Register(name, fakeFactory)
	defer gfx.Unregister(name)

	assert.True(t, gfx.IsRegistered(name))
	assert.Contains(t, gfx.Available(), name)

	dev, err := gfx.Open(name)
	require.NoError(t, err)
	assert.Equal(t, "fake 1.0", dev.Version())
}

func TestRegistryUnknownDevice(t *testing.T) {
	_, err := gfx.Open("no-such-device")
	require.ErrorIs(t, err, gfx.ErrNoDevice)
}

func TestRegistryUnregister(t *testing.T) {
	const name = "fake-unregister-test"
	gfx.Register(name, fakeFactory)
	gfx.Unregister(name)

	assert.False(t, gfx.IsRegistered(name))
	_, err := gfx.Open(name)
	require.ErrorIs(t, err, gfx.ErrNoDevice)
}

func TestDefaultFallsBackToAnyRegistered(t *testing.T) {
	const name = "fake-default-test"
	gfx.Register(name, fakeFactory)
	defer gfx.Unregister(name)

	dev, err := gfx.Default()
	require.NoError(t, err)
	assert.NotNil(t, dev)
}
