package seqs

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[T Number](s Sequence[T]) T {
	var total T
	s.Each(func(v T) Signal {
		total += v
		return Continue
	})
	return total
}

func Min[T Number](s Sequence[T]) (T, bool) {
	return extreme(s, func(candidate, current T) bool { return candidate < current })
}

func Max[T Number](s Sequence[T]) (T, bool) {
	return extreme(s, func(candidate, current T) bool { return candidate > current })
}

func extreme[T Number](s Sequence[T], better func(candidate, current T) bool) (T, bool) {
	var best T
	first := true
	s.Each(func(v T) Signal {
		if first || better(v, best) {
			best = v
			first = false
		}
		return Continue
	})
	return best, !first
}
