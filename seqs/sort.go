package seqs

import (
	"cmp"
	"slices"

	"github.com/maruel/natural"
)

// SortedSequence yields its parent in order. It is stable: elements that compare equal keep
// their original relative order.
type SortedSequence[T any] struct {
	parent  Sequence[T]
	compare func(a, b T) int
}

var _ Buffering[int] = (*SortedSequence[int])(nil)

// Sort orders s ascending by the natural ordering of T.
func Sort[T cmp.Ordered](s Sequence[T]) *SortedSequence[T] {
	return SortFunc(s, cmp.Compare[T])
}

// SortFunc orders s by compare, which returns a negative number when a sorts before b,
// a positive number when after, and zero when they are equal.
func SortFunc[T any](s Sequence[T], compare func(a, b T) int) *SortedSequence[T] {
	return &SortedSequence[T]{parent: s, compare: compare}
}

// SortBy orders s ascending by the key keyFn extracts.
func SortBy[T any, K cmp.Ordered](s Sequence[T], keyFn func(T) K) *SortedSequence[T] {
	return SortFunc(s, func(a, b T) int { return cmp.Compare(keyFn(a), keyFn(b)) })
}

// SortNatural orders strings so that embedded numbers compare by value ("file2" < "file10").
func SortNatural(s Sequence[string]) *SortedSequence[string] {
	return SortFunc(s, NaturalCompare)
}

// Descending reverses the order of compare.
func Descending[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return compare(b, a) }
}

// NaturalCompare compares strings treating runs of digits as numbers.
func NaturalCompare(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

func (s *SortedSequence[T]) Materialize() []T {
	// ToSlice always returns a private copy, so sorting never touches the source.
	items := ToSlice(s.parent)
	slices.SortStableFunc(items, s.compare)
	return items
}

func (s *SortedSequence[T]) Each(visit func(T) Signal) Signal {
	return eachOf(s.Materialize(), visit)
}
