package storage

import (
	"sync"

	"github.com/samber/mo"
)

// Memory keeps values for the lifetime of the process only.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Name() string { return BackendMemory }

func (m *Memory) Get(key string) (mo.Option[string], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return mo.Some(v), nil
	}
	return mo.None[string](), nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
