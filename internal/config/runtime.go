package config

import "sync"

// Settings that can change while the sandbox runs.
type runtimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	vsync    bool
}

var globalRuntime = &runtimeSettings{vsync: true}

// Apply seeds the runtime settings from a loaded config.
func Apply(c Config) {
	SetFPSLimit(c.Window.FPSLimit)
	SetVSync(c.Window.VSync)
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited.
func GetFPSLimit() int {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fpsLimit
}

func SetFPSLimit(limit int) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRuntime.fpsLimit = limit
}

func GetVSync() bool {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.vsync
}

func SetVSync(on bool) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.vsync = on
}
