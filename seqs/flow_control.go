package seqs

// Take yields at most the first n elements of s and never asks s for more.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		if n <= 0 {
			return Continue
		}
		count := 0
		stopped := false
		s.Each(func(v T) Signal {
			if visit(v) == Stop {
				stopped = true
				return Stop
			}
			count++
			if count >= n {
				// reaching the limit is not an early stop for our caller
				return Stop
			}
			return Continue
		})
		if stopped {
			return Stop
		}
		return Continue
	})
}

// Drop skips the first n elements of s.
func Drop[T any](s Sequence[T], n int) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		skipped := 0
		return s.Each(func(v T) Signal {
			if skipped < n {
				skipped++
				return Continue
			}
			return visit(v)
		})
	})
}

// TakeWhile yields elements while predicate holds, then stops s.
func TakeWhile[T any](s Sequence[T], predicate func(T) bool) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		stopped := false
		s.Each(func(v T) Signal {
			if !predicate(v) {
				return Stop
			}
			if visit(v) == Stop {
				stopped = true
				return Stop
			}
			return Continue
		})
		if stopped {
			return Stop
		}
		return Continue
	})
}

// DropWhile skips elements while predicate holds, then yields the rest.
func DropWhile[T any](s Sequence[T], predicate func(T) bool) Sequence[T] {
	return SequenceFunc[T](func(visit func(T) Signal) Signal {
		dropping := true
		return s.Each(func(v T) Signal {
			if dropping {
				if predicate(v) {
					return Continue
				}
				dropping = false
			}
			return visit(v)
		})
	})
}
