package seqs

// Reverse yields s back to front. A random-access parent is reversed by index mapping
// without buffering; any other parent is materialized first.
func Reverse[T any](s Sequence[T]) Sequence[T] {
	if ra, ok := s.(RandomAccess[T]); ok {
		return &IndexedReversedSequence[T]{parent: ra}
	}
	return &ReversedSequence[T]{parent: s}
}

// IndexedReversedSequence maps Get(i) to parent.Get(Len()-1-i).
type IndexedReversedSequence[T any] struct {
	parent RandomAccess[T]
}

var _ RandomAccess[int] = (*IndexedReversedSequence[int])(nil)

func (r *IndexedReversedSequence[T]) Each(visit func(T) Signal) Signal {
	for i := r.parent.Len() - 1; i >= 0; i-- {
		if visit(r.parent.Get(i)) == Stop {
			return Stop
		}
	}
	return Continue
}

func (r *IndexedReversedSequence[T]) Get(i int) T {
	return r.parent.Get(r.parent.Len() - 1 - i)
}

func (r *IndexedReversedSequence[T]) Len() int {
	return r.parent.Len()
}

// ReversedSequence buffers a parent that has no random access.
type ReversedSequence[T any] struct {
	parent Sequence[T]
}

var _ Buffering[int] = (*ReversedSequence[int])(nil)

func (r *ReversedSequence[T]) Materialize() []T {
	items := ToSlice(r.parent)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func (r *ReversedSequence[T]) Each(visit func(T) Signal) Signal {
	return eachOf(r.Materialize(), visit)
}
