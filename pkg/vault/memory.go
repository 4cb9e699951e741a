package vault

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryBackend keeps values in process memory. It backs tests and
// single-node deployments that run without Redis.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	value    string
	deadline time.Time
}

func NewMemory() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]memoryItem)}
}

func (m *MemoryBackend) Set(_ context.Context, key, value string, ttl time.Duration) error {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.deadline = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if !item.deadline.IsZero() && time.Now().After(item.deadline) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return "", ErrNotFound
	}
	return item.value, nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
