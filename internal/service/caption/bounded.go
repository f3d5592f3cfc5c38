package caption

// Bounded is an append-only list that silently drops items past its limit.
// The zero value is unusable; create one with NewBounded.
type Bounded[T any] struct {
	limit int
	items []T
}

// NewBounded returns an empty list holding at most limit items.
func NewBounded[T any](limit int) *Bounded[T] {
	return &Bounded[T]{limit: max(limit, 0)}
}

// Add appends items while room remains and returns how many were kept.
func (b *Bounded[T]) Add(items ...T) int {
	n := min(b.limit-len(b.items), len(items))
	if n <= 0 {
		return 0
	}
	b.items = append(b.items, items[:n]...)
	return n
}

// Items returns a copy of the kept items.
func (b *Bounded[T]) Items() []T {
	if len(b.items) == 0 {
		return nil
	}
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Bounded[T]) Len() int { return len(b.items) }

func (b *Bounded[T]) Full() bool { return len(b.items) >= b.limit }
