package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
)

// Memory is a Store keeping its entities in a map. Entities are returned by
// key order.
type Memory[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemory[T Entity[T]]() *Memory[T] {
	return &Memory[T]{
		items: make(map[string]T),
	}
}

// Create adds ent to the store. A key is generated when ent has none.
func (m *Memory[T]) Create(ctx context.Context, ent T) (T, error) {
	if err := ctx.Err(); err != nil {
		return ent, err
	}
	if ent.Key() == "" {
		key, err := newKey()
		if err != nil {
			return ent, err
		}
		ent = ent.WithKey(key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[ent.Key()]; ok {
		return ent, fmt.Errorf("%w: %s", ErrConflict, ent.Key())
	}
	m.items[ent.Key()] = ent
	return ent, nil
}

func (m *Memory[T]) Read(ctx context.Context, keep Filter[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]T, 0, len(m.items))
	for _, it := range m.items {
		if keep == nil || keep(it) {
			list = append(list, it)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Key() < list[j].Key()
	})
	return list, nil
}

func (m *Memory[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return it, nil
}

func (m *Memory[T]) Update(ctx context.Context, ent T) (T, error) {
	if err := ctx.Err(); err != nil {
		return ent, err
	}
	if ent.Key() == "" {
		return ent, fmt.Errorf("%w: missing key", ErrInvalid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[ent.Key()]; !ok {
		return ent, fmt.Errorf("%w: %s", ErrNotFound, ent.Key())
	}
	m.items[ent.Key()] = ent
	return ent, nil
}

func (m *Memory[T]) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(m.items, key)
	return nil
}

func newKey() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
