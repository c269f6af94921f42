// Package store provides ConfigStore implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/expedition-engine/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	configs map[generic.ExpeditionID]generic.ExpeditionConfig
}

func NewMemory() *Memory {
	return &Memory{
		configs: make(map[generic.ExpeditionID]generic.ExpeditionConfig),
	}
}

// NewMemoryWithDefaults returns a store holding generic.DefaultConfig for every id.
func NewMemoryWithDefaults() *Memory {
	m := NewMemory()
	for _, id := range generic.AllExpeditionIDs() {
		m.configs[id] = generic.DefaultConfig()
	}
	return m
}

func (m *Memory) Get(_ context.Context, id generic.ExpeditionID) (generic.ExpeditionConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, ok := m.configs[id]
	if !ok {
		return generic.ExpeditionConfig{}, generic.ErrConfigNotFound
	}
	return cfg, nil
}

func (m *Memory) All(_ context.Context) (map[generic.ExpeditionID]generic.ExpeditionConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[generic.ExpeditionID]generic.ExpeditionConfig, len(m.configs))
	for id, cfg := range m.configs {
		result[id] = cfg
	}
	return result, nil
}

// Replace swaps one config. Config values are immutable, so no copy is needed.
func (m *Memory) Replace(_ context.Context, id generic.ExpeditionID, cfg generic.ExpeditionConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[id] = cfg
	return nil
}

// ReplaceAll swaps the whole mapping under a single lock.
func (m *Memory) ReplaceAll(_ context.Context, configs map[generic.ExpeditionID]generic.ExpeditionConfig) error {
	next := make(map[generic.ExpeditionID]generic.ExpeditionConfig, len(configs))
	for id, cfg := range configs {
		next[id] = cfg
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs = next
	return nil
}
