package seqview

import "iter"

// Mapped is a lazy view that yields fn(src.At(off+i)) on At(i).
//
// A Mapped value is a cursor: it is small, and copying it yields an
// independent cursor over the same source. It never copies or buffers
// source elements.
type Mapped[T, U any] struct {
	src Indexer[T]
	fn  func(T) U
	off int
}

// Map returns a view applying fn to every element of src on demand.
// It panics with ErrNilSource or ErrNilFunc on nil arguments.
//
// Complexity: O(1) construction, O(1) per At plus the cost of fn.
func Map[T, U any](src Indexer[T], fn func(T) U) Mapped[T, U] {
	if src == nil {
		panic(ErrNilSource)
	}
	if fn == nil {
		panic(ErrNilFunc)
	}

	return Mapped[T, U]{src: src, fn: fn}
}

// At returns the mapped value at position i relative to the cursor.
func (m Mapped[T, U]) At(i int) U {
	return m.fn(m.src.At(m.off + i))
}

// Len returns the number of positions left between the cursor and the end
// of the source, or -1 when the source does not report its extent.
func (m Mapped[T, U]) Len() int {
	l, ok := m.src.(Lener)
	if !ok {
		return -1
	}

	return l.Len() - m.off
}

// Shift returns a cursor advanced by k positions. The receiver is unchanged.
func (m Mapped[T, U]) Shift(k int) Mapped[T, U] {
	m.off += k

	return m
}

// Offset reports how far the cursor has been shifted from the source start.
func (m Mapped[T, U]) Offset() int { return m.off }

// Values returns an iterator over the first n mapped values. Each call to
// the returned iterator restarts from position 0.
func (m Mapped[T, U]) Values(n int) iter.Seq[U] {
	return func(yield func(U) bool) {
		for i := 0; i < n; i++ {
			if !yield(m.At(i)) {
				return
			}
		}
	}
}

// Collect copies the first n values of src into a newly allocated slice.
func Collect[T any](src Indexer[T], n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = src.At(i)
	}

	return out
}
