package render

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a canvas of the given pixel size and resolution.
// Factories are registered via Register() and called by New().
type Factory func(width, height int, dpi float64) (Canvas, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available by name.
// It is typically called from init() in backend packages:
//
//	func init() {
//	    render.Register("png", func(w, h int, dpi float64) (render.Canvas, error) {
//	        return New(w, h, dpi)
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("render: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a canvas using the named backend.
func New(name string, width, height int, dpi float64) (Canvas, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", width, height)
	}
	return factory(width, height, dpi)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
