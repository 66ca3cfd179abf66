package resources

import (
	"sync"

	"github.com/videotube/vtx/internal/api"
)

// Collection is an ordered, id-keyed async resource collection.
//
// Loading is true only between an operation's Begin and its terminal merge
// or Fail. The error is cleared at the start of every new operation.
type Collection[T any] struct {
	mu      sync.Mutex
	id      func(T) string
	items   []T
	loading bool
	err     *api.Error
	closed  bool
}

// NewCollection creates a Collection whose items are keyed by the given id
// extractor.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Begin starts a new operation: loading on, previous error cleared.
func (c *Collection[T]) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.loading = true
	c.err = nil
}

// Fail settles an operation with the normalized error; items are unchanged.
func (c *Collection[T]) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.loading = false
	c.err = api.AsError(err)
}

// ReplaceAll settles a read-list operation by replacing the items wholesale.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.settle(func() {
		c.items = append([]T(nil), items...)
	})
}

// Prepend settles a create operation; new items go first (newest-first).
func (c *Collection[T]) Prepend(item T) {
	c.settle(func() {
		c.items = append([]T{item}, c.items...)
	})
}

// Update settles an update operation by replacing the matching item in
// place; order is preserved. Replaying the same payload is idempotent. An
// unknown id is a no-op merge.
func (c *Collection[T]) Update(item T) {
	c.settle(func() {
		id := c.id(item)
		for i := range c.items {
			if c.id(c.items[i]) == id {
				c.items[i] = item
				return
			}
		}
	})
}

// Remove settles a delete operation by dropping the item with the given id.
func (c *Collection[T]) Remove(id string) {
	c.settle(func() {
		for i := range c.items {
			if c.id(c.items[i]) == id {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return
			}
		}
	})
}

// Patch settles a toggle-style operation by mutating specific fields of the
// item with the given id. When the id is absent and insert is non-nil, the
// inserted item is prepended instead.
func (c *Collection[T]) Patch(id string, insert func() T, fn func(*T)) {
	c.settle(func() {
		for i := range c.items {
			if c.id(c.items[i]) == id {
				fn(&c.items[i])
				return
			}
		}
		if insert != nil {
			c.items = append([]T{insert()}, c.items...)
		}
	})
}

// settle applies a success merge under the lock unless the collection has
// been closed, in which case the late settlement is dropped.
func (c *Collection[T]) settle(merge func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.loading = false
	c.err = nil
	merge()
}

// Items returns a copy of the current items.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Get returns the item with the given id, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Loading reports whether an operation is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last terminal failure, or nil.
func (c *Collection[T]) Err() *api.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close marks the collection destroyed (its owning view unmounted).
// Responses arriving afterwards are not applied.
func (c *Collection[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.loading = false
}
