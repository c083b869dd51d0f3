package gfx

import (
	"errors"
	"fmt"
	"sync"
)

// Common device errors.
var (
	// ErrNoDevice is returned when no matching device factory is registered.
	ErrNoDevice = errors.New("gfx: no device available")

	// ErrNotInitialized is returned when a loop runs before setup completed.
	ErrNotInitialized = errors.New("gfx: not initialized")
)

// DeviceOpenGL is the name under which the OpenGL device registers itself
// (import github.com/kjkrol/gokgl/internal/gldevice for its side effect).
const DeviceOpenGL = "opengl"

// DeviceFactory creates a device instance. Factories run with the window's
// rendering context already current.
type DeviceFactory func() (Device, error)

var (
	registryMu sync.RWMutex
	devices    = make(map[string]DeviceFactory)
	// Selection order for Default (first registered name wins).
	devicePriority = []string{DeviceOpenGL}
)

// Register registers a device factory under the given name, replacing any
// previous registration. Typically called from init() in device packages.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	devices[name] = factory
}

// Unregister removes a device factory. Useful for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(devices, name)
}

// Available returns the registered device names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a device with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := devices[name]
	return ok
}

// Open creates the named device. Returns ErrNoDevice when the name is
// unknown; factory errors are wrapped with the device name.
func Open(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := devices[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDevice, name)
	}
	dev, err := factory()
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", name, err)
	}
	return dev, nil
}

// Default creates the best available device based on priority, falling back
// to any registered factory.
func Default() (Device, error) {
	registryMu.RLock()
	var factory DeviceFactory
	for _, name := range devicePriority {
		if f, ok := devices[name]; ok {
			factory = f
			break
		}
	}
	if factory == nil {
		for _, f := range devices {
			factory = f
			break
		}
	}
	registryMu.RUnlock()

	if factory == nil {
		return nil, ErrNoDevice
	}
	return factory()
}
