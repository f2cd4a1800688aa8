package seqs

import "strings"

// ToSlice collects every element of s into a new slice.
func ToSlice[T any](s Sequence[T]) []T {
	if ra, ok := s.(RandomAccess[T]); ok {
		out := make([]T, 0, ra.Len())
		ra.Each(func(v T) Signal {
			out = append(out, v)
			return Continue
		})
		return out
	}
	var out []T
	s.Each(func(v T) Signal {
		out = append(out, v)
		return Continue
	})
	if out == nil {
		out = []T{}
	}
	return out
}

// ForEach calls fn for every element. It never stops early.
func ForEach[T any](s Sequence[T], fn func(T)) {
	s.Each(func(v T) Signal {
		fn(v)
		return Continue
	})
}

// Contains reports whether s yields target. Traversal stops at the first match.
func Contains[T comparable](s Sequence[T], target T) bool {
	return ContainsFunc(s, target, func(a, b T) bool { return a == b })
}

// ContainsFunc reports whether some element e of s satisfies eq(e, target).
// Traversal stops at the first match.
func ContainsFunc[T any](s Sequence[T], target T, eq func(a, b T) bool) bool {
	found := false
	s.Each(func(v T) Signal {
		if eq(v, target) {
			found = true
			return Stop
		}
		return Continue
	})
	return found
}

// Equals reports whether a and b yield the same elements in the same order.
func Equals[T comparable](a, b Sequence[T]) bool {
	return EqualsFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualsFunc compares a and b pairwise with eq. a is traversed while b is pulled one element
// at a time, so both stop at the first mismatch.
func EqualsFunc[T any](a, b Sequence[T], eq func(x, y T) bool) bool {
	other := Iter(b)
	defer other.Close()

	equal := true
	a.Each(func(v T) Signal {
		if !other.MoveNext() {
			equal = false
			return Stop
		}
		w, _ := other.Current()
		if !eq(v, w) {
			equal = false
			return Stop
		}
		return Continue
	})
	// a is exhausted; b must be too
	return equal && !other.MoveNext()
}

// First returns the first element of s.
func First[T any](s Sequence[T]) (T, bool) {
	var first T
	found := false
	s.Each(func(v T) Signal {
		first = v
		found = true
		return Stop
	})
	return first, found
}

// Last returns the final element of s. Random-access sequences are not traversed.
func Last[T any](s Sequence[T]) (T, bool) {
	if ra, ok := s.(RandomAccess[T]); ok {
		if n := ra.Len(); n > 0 {
			return ra.Get(n - 1), true
		}
		var zero T
		return zero, false
	}
	var last T
	found := false
	s.Each(func(v T) Signal {
		last = v
		found = true
		return Continue
	})
	return last, found
}

// Find returns the first element satisfying predicate.
func Find[T any](s Sequence[T], predicate func(T) bool) (T, bool) {
	var match T
	found := false
	s.Each(func(v T) Signal {
		if predicate(v) {
			match = v
			found = true
			return Stop
		}
		return Continue
	})
	return match, found
}

// IndexOf returns the position of the first element equal to target, or -1.
func IndexOf[T comparable](s Sequence[T], target T) int {
	index, i := -1, 0
	s.Each(func(v T) Signal {
		if v == target {
			index = i
			return Stop
		}
		i++
		return Continue
	})
	return index
}

// Some reports whether any element satisfies predicate.
func Some[T any](s Sequence[T], predicate func(T) bool) bool {
	_, found := Find(s, predicate)
	return found
}

// Every reports whether all elements satisfy predicate. It is true for an empty sequence.
func Every[T any](s Sequence[T], predicate func(T) bool) bool {
	return s.Each(func(v T) Signal {
		if !predicate(v) {
			return Stop
		}
		return Continue
	}) == Continue
}

// Count returns the number of elements of s.
func Count[T any](s Sequence[T]) int {
	if ra, ok := s.(RandomAccess[T]); ok {
		return ra.Len()
	}
	n := 0
	s.Each(func(T) Signal {
		n++
		return Continue
	})
	return n
}

// Reduce folds s into a single value, starting from initial.
func Reduce[T, R any](s Sequence[T], initial R, reducer func(R, T) R) R {
	acc := initial
	s.Each(func(v T) Signal {
		acc = reducer(acc, v)
		return Continue
	})
	return acc
}

// Join concatenates a sequence of strings, inserting sep between elements.
func Join(s Sequence[string], sep string) string {
	var b strings.Builder
	first := true
	s.Each(func(v string) Signal {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(v)
		return Continue
	})
	return b.String()
}
