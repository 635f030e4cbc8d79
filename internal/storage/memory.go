package storage

import (
	"context"
	"sync"
)

// Memory is the in-process engine used by tests and by the server when no
// external store is configured. Values are copied on the way in and out.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory engine.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, clave string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[clave]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(_ context.Context, clave string, valor []byte) error {
	cp := make([]byte, len(valor))
	copy(cp, valor)
	m.mu.Lock()
	m.data[clave] = cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, clave string) error {
	m.mu.Lock()
	delete(m.data, clave)
	m.mu.Unlock()
	return nil
}

var _ Engine = (*Memory)(nil)
