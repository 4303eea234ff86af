package entity

import (
	"slices"

	"zombie-terminate/internal/types"
)

// Store is a component table keyed by entity ID.
type Store[T any] struct {
	items map[types.EntityID]*T
}

// NewStore creates an empty table.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[types.EntityID]*T)}
}

// Add attaches c to id, replacing any previous value.
func (s *Store[T]) Add(id types.EntityID, c *T) {
	s.items[id] = c
}

// Get returns the component attached to id.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	c, ok := s.items[id]
	return c, ok
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.items[id]
	return ok
}

func (s *Store[T]) Remove(id types.EntityID) {
	delete(s.items, id)
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

// IDs returns every ID in the table in ascending order. Systems iterate this
// slice, so removing entities while walking it is safe.
func (s *Store[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b types.EntityID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return ids
}
