package seqs

import "math/rand/v2"

// ShuffledSequence yields its parent in a uniformly random permutation, drawn afresh on
// every traversal.
type ShuffledSequence[T any] struct {
	parent Sequence[T]
	rng    *rand.Rand
}

var _ Buffering[int] = (*ShuffledSequence[int])(nil)

// Shuffle permutes s using the global random source.
func Shuffle[T any](s Sequence[T]) *ShuffledSequence[T] {
	return &ShuffledSequence[T]{parent: s}
}

// ShuffleWith permutes s using rng. A *rand.Rand is not safe for concurrent use, so the
// result must not be traversed from several goroutines at once.
func ShuffleWith[T any](s Sequence[T], rng *rand.Rand) *ShuffledSequence[T] {
	return &ShuffledSequence[T]{parent: s, rng: rng}
}

func (sh *ShuffledSequence[T]) intN(n int) int {
	if sh.rng == nil {
		return rand.IntN(n)
	}
	return sh.rng.IntN(n)
}

// Materialize runs a Fisher-Yates shuffle: position i swaps with a uniform j in [0, i].
func (sh *ShuffledSequence[T]) Materialize() []T {
	items := ToSlice(sh.parent)
	for i := len(items) - 1; i > 0; i-- {
		j := sh.intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func (sh *ShuffledSequence[T]) Each(visit func(T) Signal) Signal {
	return eachOf(sh.Materialize(), visit)
}
