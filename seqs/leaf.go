package seqs

import "slices"

// ArraySequence wraps a caller-owned slice. The slice must outlive the sequence and every
// sequence derived from it.
type ArraySequence[T any] struct {
	items []T
}

var _ RandomAccess[int] = (*ArraySequence[int])(nil)

// FromSlice wraps items without copying them.
func FromSlice[T any](items []T) *ArraySequence[T] {
	return &ArraySequence[T]{items: items}
}

// Of wraps its arguments.
func Of[T any](items ...T) *ArraySequence[T] {
	return FromSlice(items)
}

func (a *ArraySequence[T]) Each(visit func(T) Signal) Signal {
	for i := 0; i < len(a.items); i++ {
		if visit(a.items[i]) == Stop {
			return Stop
		}
	}
	return Continue
}

func (a *ArraySequence[T]) Get(i int) T {
	return a.items[i]
}

func (a *ArraySequence[T]) Len() int {
	return len(a.items)
}

// ToSlice returns an independent copy of the wrapped slice.
func (a *ArraySequence[T]) ToSlice() []T {
	return slices.Clone(a.items)
}
