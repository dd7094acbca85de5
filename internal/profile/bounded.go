package profile

// Bounded is a sequence with a fixed capacity checked on every insertion.
type Bounded[T any] struct {
	items    []T
	capacity int
}

// NewBounded returns an empty sequence holding at most capacity items.
func NewBounded[T any](capacity int) *Bounded[T] {
	return &Bounded[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Append adds v and reports false, leaving the sequence unchanged, when the
// sequence is full.
func (b *Bounded[T]) Append(v T) bool {
	if len(b.items) >= b.capacity {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Len returns the number of items.
func (b *Bounded[T]) Len() int { return len(b.items) }

// Cap returns the capacity.
func (b *Bounded[T]) Cap() int { return b.capacity }

// Items returns the filled prefix, or nil when empty.
func (b *Bounded[T]) Items() []T {
	if len(b.items) == 0 {
		return nil
	}
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Reset drops every item. It is safe at any fill level and idempotent.
func (b *Bounded[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}
