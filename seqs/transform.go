package seqs

// Map applies transform to each element of s. When s is random-access the result is too,
// and transform only runs for the elements actually read.
func Map[T, R any](s Sequence[T], transform func(T) R) Sequence[R] {
	if ra, ok := s.(RandomAccess[T]); ok {
		return &MappedSequence[T, R]{parent: ra, transform: transform}
	}
	return SequenceFunc[R](func(visit func(R) Signal) Signal {
		return s.Each(func(v T) Signal {
			return visit(transform(v))
		})
	})
}

// MappedSequence is Map over a random-access parent.
type MappedSequence[T, R any] struct {
	parent    RandomAccess[T]
	transform func(T) R
}

func (m *MappedSequence[T, R]) Each(visit func(R) Signal) Signal {
	return m.parent.Each(func(v T) Signal {
		return visit(m.transform(v))
	})
}

func (m *MappedSequence[T, R]) Get(i int) R {
	return m.transform(m.parent.Get(i))
}

func (m *MappedSequence[T, R]) Len() int {
	return m.parent.Len()
}

// Filter yields the elements of s that satisfy predicate.
func Filter[T any](s Sequence[T], predicate func(T) bool) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		return s.Each(func(v T) Signal {
			if !predicate(v) {
				return Continue
			}
			return visit(v)
		})
	})
}

// Reject yields the elements of s that do not satisfy predicate.
func Reject[T any](s Sequence[T], predicate func(T) bool) Sequence[T] {
	return Filter(s, func(v T) bool { return !predicate(v) })
}

// Compact drops zero values.
func Compact[T comparable](s Sequence[T]) Sequence[T] {
	var zero T
	return Filter(s, func(v T) bool { return v != zero })
}

// Tap calls action on each element as it passes through, without changing it.
// Useful for logging or counting accesses.
func Tap[T any](s Sequence[T], action func(T)) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		return s.Each(func(v T) Signal {
			action(v)
			return visit(v)
		})
	})
}

// WithIndex pairs every element with its zero-based position.
func WithIndex[T any](s Sequence[T]) Sequence[Pair[int, T]] {
	return SequenceFunc[Pair[int, T]](func(visit func(Pair[int, T]) Signal) Signal {
		i := 0
		return s.Each(func(v T) Signal {
			p := Pair[int, T]{Key: i, Value: v}
			i++
			return visit(p)
		})
	})
}

// Chunk groups consecutive elements into slices of size. The last chunk may be shorter.
// Chunk panics if size is not positive.
func Chunk[T any](s Sequence[T], size int) Sequence[[]T] {
	if size <= 0 {
		panic("seqs.Chunk: size must be positive")
	}
	return SequenceFunc[[]T](func(visit func([]T) Signal) Signal {
		batch := make([]T, 0, size)
		if s.Each(func(v T) Signal {
			batch = append(batch, v)
			if len(batch) < size {
				return Continue
			}
			full := batch
			batch = make([]T, 0, size)
			return visit(full)
		}) == Stop {
			return Stop
		}
		if len(batch) > 0 {
			return visit(batch)
		}
		return Continue
	})
}

// ConcatenatedSequence yields its parent, then each extra slice in order.
type ConcatenatedSequence[T any] struct {
	parent Sequence[T]
	arrays [][]T
}

// Concat appends arrays after s. The arrays are only visited if s was not stopped early.
func Concat[T any](s Sequence[T], arrays ...[]T) *ConcatenatedSequence[T] {
	return &ConcatenatedSequence[T]{parent: s, arrays: arrays}
}

func (c *ConcatenatedSequence[T]) Each(visit func(T) Signal) Signal {
	if c.parent.Each(visit) == Stop {
		return Stop
	}
	for _, arr := range c.arrays {
		if eachOf(arr, visit) == Stop {
			return Stop
		}
	}
	return Continue
}
