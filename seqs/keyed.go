package seqs

import (
	"cmp"
	"iter"
	"slices"

	"lazyseq/sets"
)

// Pair is one materialized element of a KeyedSequence.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// KeyedSequence is a lazily evaluated stream of key/value pairs. Key uniqueness is a
// property of the source, not of the abstraction.
type KeyedSequence[K comparable, V any] interface {
	Each(visit func(K, V) Signal) Signal
}

// KeyedFunc adapts a plain traversal function to KeyedSequence.
type KeyedFunc[K comparable, V any] func(visit func(K, V) Signal) Signal

func (f KeyedFunc[K, V]) Each(visit func(K, V) Signal) Signal {
	return f(visit)
}

// ObjectSequence is a keyed view of a caller-owned map. Keys are visited in ascending
// order so that repeated traversals agree.
type ObjectSequence[K cmp.Ordered, V any] struct {
	m map[K]V
}

// FromMap wraps m without copying it.
func FromMap[K cmp.Ordered, V any](m map[K]V) *ObjectSequence[K, V] {
	return &ObjectSequence[K, V]{m: m}
}

func (o *ObjectSequence[K, V]) Each(visit func(K, V) Signal) Signal {
	keys := make([]K, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if visit(k, o.m[k]) == Stop {
			return Stop
		}
	}
	return Continue
}

// Get looks up key in the wrapped map.
func (o *ObjectSequence[K, V]) Get(key K) (V, bool) {
	v, ok := o.m[key]
	return v, ok
}

func (o *ObjectSequence[K, V]) Len() int {
	return len(o.m)
}

// FromPairs builds a keyed sequence that visits pairs in the given order.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) KeyedSequence[K, V] {
	return KeyedFunc[K, V](func(visit func(K, V) Signal) Signal {
		for _, p := range pairs {
			if visit(p.Key, p.Value) == Stop {
				return Stop
			}
		}
		return Continue
	})
}

// Keyed turns a sequence of pairs into a keyed sequence.
func Keyed[K comparable, V any](s Sequence[Pair[K, V]]) KeyedSequence[K, V] {
	return KeyedFunc[K, V](func(visit func(K, V) Signal) Signal {
		return s.Each(func(p Pair[K, V]) Signal {
			return visit(p.Key, p.Value)
		})
	})
}

// Invert swaps the role of keys and values.
func Invert[K, V comparable](ks KeyedSequence[K, V]) KeyedSequence[V, K] {
	return KeyedFunc[V, K](func(visit func(V, K) Signal) Signal {
		return ks.Each(func(k K, v V) Signal {
			return visit(v, k)
		})
	})
}

// Pick keeps the pairs whose key is one of keys.
func Pick[K comparable, V any](ks KeyedSequence[K, V], keys ...K) KeyedSequence[K, V] {
	return selectKeys(ks, keys, true)
}

// Omit drops the pairs whose key is one of keys.
func Omit[K comparable, V any](ks KeyedSequence[K, V], keys ...K) KeyedSequence[K, V] {
	return selectKeys(ks, keys, false)
}

func selectKeys[K comparable, V any](ks KeyedSequence[K, V], keys []K, keep bool) KeyedSequence[K, V] {
	return KeyedFunc[K, V](func(visit func(K, V) Signal) Signal {
		members := sets.Of(keys...)
		return ks.Each(func(k K, v V) Signal {
			if members.Contains(k) != keep {
				return Continue
			}
			return visit(k, v)
		})
	})
}

// FilterPairs keeps the pairs for which predicate holds.
func FilterPairs[K comparable, V any](ks KeyedSequence[K, V], predicate func(K, V) bool) KeyedSequence[K, V] {
	return KeyedFunc[K, V](func(visit func(K, V) Signal) Signal {
		return ks.Each(func(k K, v V) Signal {
			if !predicate(k, v) {
				return Continue
			}
			return visit(k, v)
		})
	})
}

// MapValues transforms every value, keeping keys.
func MapValues[K comparable, V, R any](ks KeyedSequence[K, V], transform func(V) R) KeyedSequence[K, R] {
	return KeyedFunc[K, R](func(visit func(K, R) Signal) Signal {
		return ks.Each(func(k K, v V) Signal {
			return visit(k, transform(v))
		})
	})
}

// Keys yields the keys of ks.
func Keys[K comparable, V any](ks KeyedSequence[K, V]) Sequence[K] {
	return SequenceFunc[K](func(visit func(K) Signal) Signal {
		return ks.Each(func(k K, _ V) Signal {
			return visit(k)
		})
	})
}

// Values yields the values of ks.
func Values[K comparable, V any](ks KeyedSequence[K, V]) Sequence[V] {
	return SequenceFunc[V](func(visit func(V) Signal) Signal {
		return ks.Each(func(_ K, v V) Signal {
			return visit(v)
		})
	})
}

// PairsOf yields the pairs of ks as values.
func PairsOf[K comparable, V any](ks KeyedSequence[K, V]) Sequence[Pair[K, V]] {
	return SequenceFunc[Pair[K, V]](func(visit func(Pair[K, V]) Signal) Signal {
		return ks.Each(func(k K, v V) Signal {
			return visit(Pair[K, V]{Key: k, Value: v})
		})
	})
}

// ToPairs collects ks into a slice of pairs, in traversal order.
func ToPairs[K comparable, V any](ks KeyedSequence[K, V]) []Pair[K, V] {
	out := []Pair[K, V]{}
	ks.Each(func(k K, v V) Signal {
		out = append(out, Pair[K, V]{Key: k, Value: v})
		return Continue
	})
	return out
}

// ToMap collects ks into a map. Later pairs overwrite earlier pairs with the same key.
func ToMap[K comparable, V any](ks KeyedSequence[K, V]) map[K]V {
	out := make(map[K]V)
	ks.Each(func(k K, v V) Signal {
		out[k] = v
		return Continue
	})
	return out
}

// All2 exposes ks as a range-over-func iterator of key/value pairs.
func All2[K comparable, V any](ks KeyedSequence[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ks.Each(func(k K, v V) Signal {
			if !yield(k, v) {
				return Stop
			}
			return Continue
		})
	}
}
