package seqs

// GroupedSequence buckets its parent's elements by key. It consumes the whole parent before
// yielding the first group; groups come out in the order their keys were first seen.
type GroupedSequence[K comparable, T any] struct {
	parent Sequence[T]
	keyFn  func(T) K
}

var _ KeyedSequence[string, []int] = (*GroupedSequence[string, int])(nil)

// GroupBy groups the elements of s by keyFn.
func GroupBy[K comparable, T any](s Sequence[T], keyFn func(T) K) *GroupedSequence[K, T] {
	return &GroupedSequence[K, T]{parent: s, keyFn: keyFn}
}

// Materialize runs the grouping pass.
func (g *GroupedSequence[K, T]) Materialize() []Pair[K, []T] {
	index := make(map[K]int)
	var groups []Pair[K, []T]
	g.parent.Each(func(v T) Signal {
		k := g.keyFn(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Pair[K, []T]{Key: k})
		}
		groups[i].Value = append(groups[i].Value, v)
		return Continue
	})
	return groups
}

func (g *GroupedSequence[K, T]) Each(visit func(K, []T) Signal) Signal {
	for _, p := range g.Materialize() {
		if visit(p.Key, p.Value) == Stop {
			return Stop
		}
	}
	return Continue
}

// CountedSequence counts its parent's elements per key, in first-seen key order.
type CountedSequence[K comparable, T any] struct {
	parent Sequence[T]
	keyFn  func(T) K
}

// CountBy counts the elements of s per keyFn.
func CountBy[K comparable, T any](s Sequence[T], keyFn func(T) K) *CountedSequence[K, T] {
	return &CountedSequence[K, T]{parent: s, keyFn: keyFn}
}

func (c *CountedSequence[K, T]) Materialize() []Pair[K, int] {
	index := make(map[K]int)
	var counts []Pair[K, int]
	c.parent.Each(func(v T) Signal {
		k := c.keyFn(v)
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, Pair[K, int]{Key: k})
		}
		counts[i].Value++
		return Continue
	})
	return counts
}

func (c *CountedSequence[K, T]) Each(visit func(K, int) Signal) Signal {
	for _, p := range c.Materialize() {
		if visit(p.Key, p.Value) == Stop {
			return Stop
		}
	}
	return Continue
}

// IndexBy keys each element by keyFn. When several elements share a key the last one wins,
// but the key keeps the position where it was first seen.
func IndexBy[K comparable, T any](s Sequence[T], keyFn func(T) K) KeyedSequence[K, T] {
	return KeyedFunc[K, T](func(visit func(K, T) Signal) Signal {
		index := make(map[K]int)
		var entries []Pair[K, T]
		s.Each(func(v T) Signal {
			k := keyFn(v)
			if i, ok := index[k]; ok {
				entries[i].Value = v
				return Continue
			}
			index[k] = len(entries)
			entries = append(entries, Pair[K, T]{Key: k, Value: v})
			return Continue
		})
		for _, p := range entries {
			if visit(p.Key, p.Value) == Stop {
				return Stop
			}
		}
		return Continue
	})
}
