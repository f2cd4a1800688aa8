package seqs

import (
	"errors"
	"iter"
)

var (
	// ErrIteratorNotStarted is returned by Current before the first MoveNext.
	ErrIteratorNotStarted = errors.New("seqs: iterator read before MoveNext")
	// ErrIteratorExhausted is returned by Current once MoveNext has reported false.
	ErrIteratorExhausted = errors.New("seqs: iterator read past the end")
)

// Iterator is a caller-driven cursor. MoveNext must be called before the first Current.
// An Iterator belongs to a single traversal and must not be shared between goroutines.
type Iterator[T any] interface {
	// MoveNext advances to the next element and reports whether there is one.
	MoveNext() bool
	// Current returns the element MoveNext advanced to.
	Current() (T, error)
	// Close releases resources held by the cursor. Later MoveNext calls report false.
	Close()
}

type cursorState uint8

const (
	cursorNotStarted cursorState = iota
	cursorActive
	cursorExhausted
)

func readState[T any](state cursorState, v T) (T, error) {
	switch state {
	case cursorNotStarted:
		var zero T
		return zero, ErrIteratorNotStarted
	case cursorExhausted:
		var zero T
		return zero, ErrIteratorExhausted
	}
	return v, nil
}

// SequenceIterator walks a RandomAccess sequence by position.
type SequenceIterator[T any] struct {
	seq   RandomAccess[T]
	index int
	state cursorState
}

func NewSequenceIterator[T any](seq RandomAccess[T]) *SequenceIterator[T] {
	return &SequenceIterator[T]{seq: seq, index: -1}
}

func (it *SequenceIterator[T]) MoveNext() bool {
	if it.state == cursorExhausted {
		return false
	}
	if it.index+1 >= it.seq.Len() {
		it.state = cursorExhausted
		return false
	}
	it.index++
	it.state = cursorActive
	return true
}

func (it *SequenceIterator[T]) Current() (T, error) {
	if it.state != cursorActive {
		var zero T
		return readState(it.state, zero)
	}
	return it.seq.Get(it.index), nil
}

// Index returns the position of the current element, or -1 before the first MoveNext.
func (it *SequenceIterator[T]) Index() int {
	return it.index
}

func (it *SequenceIterator[T]) Close() {
	it.state = cursorExhausted
}

// FilteringIterator yields the elements of an inner iterator that satisfy a predicate.
type FilteringIterator[T any] struct {
	inner     Iterator[T]
	predicate func(T) bool
	current   T
	state     cursorState
}

func NewFilteringIterator[T any](inner Iterator[T], predicate func(T) bool) *FilteringIterator[T] {
	return &FilteringIterator[T]{inner: inner, predicate: predicate}
}

func (it *FilteringIterator[T]) MoveNext() bool {
	if it.state == cursorExhausted {
		return false
	}
	for it.inner.MoveNext() {
		v, err := it.inner.Current()
		if err != nil {
			break
		}
		if it.predicate(v) {
			it.current = v
			it.state = cursorActive
			return true
		}
	}
	var zero T
	it.current = zero
	it.state = cursorExhausted
	return false
}

func (it *FilteringIterator[T]) Current() (T, error) {
	return readState(it.state, it.current)
}

func (it *FilteringIterator[T]) Close() {
	it.state = cursorExhausted
	it.inner.Close()
}

// pullIterator drives an arbitrary Sequence through iter.Pull.
type pullIterator[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	state   cursorState
}

func newPullIterator[T any](s Sequence[T]) *pullIterator[T] {
	next, stop := iter.Pull(All(s))
	return &pullIterator[T]{next: next, stop: stop}
}

func (it *pullIterator[T]) MoveNext() bool {
	if it.state == cursorExhausted {
		return false
	}
	v, ok := it.next()
	if !ok {
		it.Close()
		return false
	}
	it.current = v
	it.state = cursorActive
	return true
}

func (it *pullIterator[T]) Current() (T, error) {
	return readState(it.state, it.current)
}

func (it *pullIterator[T]) Close() {
	var zero T
	it.current = zero
	it.state = cursorExhausted
	it.stop()
}

// Iter returns a pull cursor over s. Random-access sequences are walked by position;
// anything else is suspended between MoveNext calls, so callers must Close the iterator
// when they stop early.
func Iter[T any](s Sequence[T]) Iterator[T] {
	if ra, ok := s.(RandomAccess[T]); ok {
		return NewSequenceIterator(ra)
	}
	return newPullIterator(s)
}
