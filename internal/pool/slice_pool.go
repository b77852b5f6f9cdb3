package pool

import "sync"

// SlicePool pools slices of T for reuse across calls.
//
// The zero value is not usable; create one with NewSlicePool.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice with length 0 and capacity of at least capacity.
// The caller must call the returned cleanup function to return the slice to the pool,
// and must not retain the slice afterwards.
//
// Example:
//
//	pairs, cleanup := pairPool.Get(len(counts))
//	defer cleanup()
func (p *SlicePool[T]) Get(capacity int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]T, 0, capacity)
	}
	*ptr = slice

	return slice, func() {
		clear((*ptr)[:cap(*ptr)])
		*ptr = (*ptr)[:0]
		p.pool.Put(ptr)
	}
}
