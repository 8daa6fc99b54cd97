package storage

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Memory keeps resources in memory. Useful for tests and dry runs.
type Memory struct {
	files map[string][]byte
	mu    sync.RWMutex
}

// NewMemory returns a Memory seeded with files (name to content).
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string][]byte, len(files))}
	for name, content := range files {
		if clean, err := cleanName(name); err == nil {
			m.files[clean] = []byte(content)
		}
	}
	return m
}

// Read implements Storage.
func (m *Memory) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[clean]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return slices.Clone(data), nil
}

// Write implements Storage.
func (m *Memory) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := cleanName(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.files[clean] = slices.Clone(data)
	m.mu.Unlock()
	return nil
}

// Names returns the stored names in lexical order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Get returns the content of name as a string, or "" when absent.
func (m *Memory) Get(name string) string {
	clean, err := cleanName(name)
	if err != nil {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return string(m.files[clean])
}

var _ Storage = (*Memory)(nil)
