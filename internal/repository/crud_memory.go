package repository

import (
	"context"
	"sync"
)

// MemoryCrudRepository guarda entidades en memoria respetando el orden de inserción.
// Sobrescribir un id existente conserva su posición.
type MemoryCrudRepository[T any, ID comparable] struct {
	mu    sync.RWMutex
	idOf  func(T) ID
	items []T
	index map[ID]int
}

func NewMemoryCrudRepository[T any, ID comparable](idOf func(T) ID) *MemoryCrudRepository[T, ID] {
	return &MemoryCrudRepository[T, ID]{
		idOf:  idOf,
		items: make([]T, 0),
		index: make(map[ID]int),
	}
}

func (r *MemoryCrudRepository[T, ID]) FindAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryCrudRepository[T, ID]) FindByID(_ context.Context, id ID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	item := r.items[i]
	return &item, nil
}

func (r *MemoryCrudRepository[T, ID]) Save(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.idOf(entity)
	if i, ok := r.index[id]; ok {
		r.items[i] = entity
		return nil
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, entity)
	return nil
}
