package config

import (
	"sync"

	"swellsim/core"
)

// Store holds the live swell configuration. The render loop takes one
// Snapshot per frame and works on that immutable value; websocket
// control messages and forecast ingestion mutate through Update, which
// clamps before publishing. Snapshot never blocks for long: the store
// is the only synchronization point between the control side and the
// frame loop.
type Store struct {
	mu  sync.RWMutex
	cfg core.Config
}

// NewStore creates a store seeded with the given config, clamped.
func NewStore(cfg core.Config) *Store {
	return &Store{cfg: Clamp(cfg)}
}

// Snapshot returns the current configuration by value.
func (s *Store) Snapshot() core.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn to a copy of the current config and publishes the
// clamped result.
func (s *Store) Update(fn func(*core.Config)) core.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	fn(&cfg)
	s.cfg = Clamp(cfg)
	return s.cfg
}

// ApplyPreset swaps in the named preset, keeping the current theme and
// wireframe choice since those are display state, not conditions.
func (s *Store) ApplyPreset(name string) core.Config {
	return s.Update(func(cfg *core.Config) {
		theme := cfg.Theme
		wireframe := cfg.Wireframe
		*cfg = Preset(name)
		cfg.Theme = theme
		cfg.Wireframe = wireframe
	})
}
