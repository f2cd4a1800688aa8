package seqs

import "iter"

// Signal is returned by a visitor to steer a traversal, and by Each to report how the
// traversal ended.
type Signal uint8

const (
	// Continue asks for the next element. Each returns it when the sequence was exhausted.
	Continue Signal = iota
	// Stop ends the traversal. Each returns it when a visitor stopped early, and every
	// enclosing sequence must return it in turn.
	Stop
)

// Sequence is a lazily evaluated, ordered stream of elements.
//
// Each calls visit for every element in order until the stream is exhausted or visit
// returns Stop. Calling Each again replays the same logical stream unless the sequence is
// documented as single-use.
type Sequence[T any] interface {
	Each(visit func(T) Signal) Signal
}

// RandomAccess is a finite Sequence with O(1) positional lookup.
// Get(i) for 0 <= i < Len() returns the i-th element produced by Each.
type RandomAccess[T any] interface {
	Sequence[T]
	Get(i int) T
	Len() int
}

// Buffering is a Sequence that must observe its whole parent before it can yield anything.
// Materialize computes that full result into a freshly owned slice; Each serves from it.
type Buffering[T any] interface {
	Sequence[T]
	Materialize() []T
}

// SequenceFunc adapts a plain traversal function to Sequence.
type SequenceFunc[T any] func(visit func(T) Signal) Signal

func (f SequenceFunc[T]) Each(visit func(T) Signal) Signal {
	return f(visit)
}

// All exposes s as a range-over-func iterator. Breaking out of the loop stops s.
func All[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Each(func(v T) Signal {
			if !yield(v) {
				return Stop
			}
			return Continue
		})
	}
}

// FromSeq wraps a range-over-func iterator as a Sequence.
// It is re-runnable exactly when seq is.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		for v := range seq {
			if visit(v) == Stop {
				return Stop
			}
		}
		return Continue
	})
}

// eachOf traverses a materialized slice.
func eachOf[T any](items []T, visit func(T) Signal) Signal {
	for _, v := range items {
		if visit(v) == Stop {
			return Stop
		}
	}
	return Continue
}
