// Package symbols provides a generic table of symbols keyed by address.
package symbols

import (
	"maps"
	"slices"
)

// Manager tracks one symbol per address.
// T is the type of symbol being managed (e.g., label.Label).
type Manager[T any] struct {
	items map[uint16]T
}

// New creates a new symbol manager.
func New[T any]() *Manager[T] {
	return &Manager[T]{
		items: make(map[uint16]T),
	}
}

// Get returns the item at the given address.
func (m *Manager[T]) Get(address uint16) (T, bool) {
	item, ok := m.items[address]
	return item, ok
}

// Set sets the item at the given address.
func (m *Manager[T]) Set(address uint16, item T) {
	m.items[address] = item
}

// Has returns whether an item exists at the given address.
func (m *Manager[T]) Has(address uint16) bool {
	_, ok := m.items[address]
	return ok
}

// Delete removes the item at the given address and returns whether it existed.
func (m *Manager[T]) Delete(address uint16) bool {
	if _, ok := m.items[address]; !ok {
		return false
	}
	delete(m.items, address)
	return true
}

// Len returns the number of items in the manager.
func (m *Manager[T]) Len() int {
	return len(m.items)
}

// Clear removes all items.
func (m *Manager[T]) Clear() {
	clear(m.items)
}

// Addresses returns all addresses that have an item, sorted ascending.
func (m *Manager[T]) Addresses() []uint16 {
	return slices.Sorted(maps.Keys(m.items))
}

// Sorted returns all items sorted by their address.
func (m *Manager[T]) Sorted() []T {
	addresses := m.Addresses()
	items := make([]T, 0, len(addresses))
	for _, address := range addresses {
		items = append(items, m.items[address])
	}
	return items
}
