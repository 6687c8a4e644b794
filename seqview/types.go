package seqview

import "errors"

// ErrNilSource is the panic value used when a view is built over a nil source.
var ErrNilSource = errors.New("seqview: source is nil")

// ErrNilFunc is the panic value used when a view is built with a nil mapping.
var ErrNilFunc = errors.New("seqview: mapping function is nil")

// Indexer is a read-only, position-addressable sequence of T.
type Indexer[T any] interface {
	At(i int) T
}

// Storer is a writable, position-addressable sequence of T.
type Storer[T any] interface {
	Set(i int, v T)
}

// Lener is implemented by sequences that know their own extent.
type Lener interface {
	Len() int
}

// Slice adapts a plain Go slice to Indexer, Storer and Lener.
type Slice[T any] []T

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Set stores v at s[i].
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }
