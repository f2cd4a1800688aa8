package seqs

import "lazyseq/sets"

// IntersectedSequence streams the parent elements present in every one of a list of arrays.
// Only the arrays are materialized; each common value is yielded once, at its first position.
type IntersectedSequence[T any] struct {
	parent Sequence[T]
	arrays [][]T
}

// Intersection keeps the elements of s found in every array.
func Intersection[T any](s Sequence[T], arrays ...[]T) *IntersectedSequence[T] {
	return &IntersectedSequence[T]{parent: s, arrays: arrays}
}

func (is *IntersectedSequence[T]) Each(visit func(T) Signal) Signal {
	members := make([]*sets.ValueSet[T], len(is.arrays))
	for i, arr := range is.arrays {
		members[i] = sets.Of(arr...)
	}
	yielded := sets.New[T]()
	return is.parent.Each(func(v T) Signal {
		for _, m := range members {
			if !m.Contains(v) {
				return Continue
			}
		}
		if !yielded.Add(v) {
			return Continue
		}
		return visit(v)
	})
}

// WithoutSequence streams the parent elements absent from an exclusion list.
type WithoutSequence[T any] struct {
	parent   Sequence[T]
	excluded []T
}

// Without drops the elements of s equal to any of values.
func Without[T any](s Sequence[T], values ...T) *WithoutSequence[T] {
	return &WithoutSequence[T]{parent: s, excluded: values}
}

// Difference drops the elements of s found in any of arrays.
func Difference[T any](s Sequence[T], arrays ...[]T) *WithoutSequence[T] {
	var excluded []T
	for _, arr := range arrays {
		excluded = append(excluded, arr...)
	}
	return Without(s, excluded...)
}

func (w *WithoutSequence[T]) Each(visit func(T) Signal) Signal {
	excluded := sets.Of(w.excluded...)
	return w.parent.Each(func(v T) Signal {
		if excluded.Contains(v) {
			return Continue
		}
		return visit(v)
	})
}

// UniqueSequence streams the parent, skipping values already seen in this traversal.
type UniqueSequence[T, K any] struct {
	parent Sequence[T]
	keyFn  func(T) K
}

// Uniq yields each distinct value of s once, in first-seen order.
// Values of different kinds never count as duplicates of each other.
func Uniq[T any](s Sequence[T]) *UniqueSequence[T, T] {
	return &UniqueSequence[T, T]{parent: s, keyFn: func(v T) T { return v }}
}

// UniqBy yields the first element of s for each distinct keyFn result.
func UniqBy[T, K any](s Sequence[T], keyFn func(T) K) *UniqueSequence[T, K] {
	return &UniqueSequence[T, K]{parent: s, keyFn: keyFn}
}

func (u *UniqueSequence[T, K]) Each(visit func(T) Signal) Signal {
	seen := sets.New[K]()
	return u.parent.Each(func(v T) Signal {
		if !seen.Add(u.keyFn(v)) {
			return Continue
		}
		return visit(v)
	})
}

// Union yields the distinct elements of s followed by those of arrays not seen before.
func Union[T any](s Sequence[T], arrays ...[]T) *UniqueSequence[T, T] {
	return Uniq[T](Concat(s, arrays...))
}
