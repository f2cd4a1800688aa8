package seqs

// ZippedSequence groups each parent element with the elements at the same position in a
// list of arrays. Arrays shorter than the parent simply stop contributing; groups are never
// padded.
type ZippedSequence[T any] struct {
	parent Sequence[T]
	arrays [][]T
}

// Zip pairs s with arrays: Zip(Of(1, 2, 3), []int{10, 20}) yields [1 10], [2 20], [3].
func Zip[T any](s Sequence[T], arrays ...[]T) *ZippedSequence[T] {
	return &ZippedSequence[T]{parent: s, arrays: arrays}
}

func (z *ZippedSequence[T]) Each(visit func([]T) Signal) Signal {
	i := 0
	return z.parent.Each(func(v T) Signal {
		group := make([]T, 1, len(z.arrays)+1)
		group[0] = v
		for _, arr := range z.arrays {
			if i < len(arr) {
				group = append(group, arr[i])
			}
		}
		i++
		return visit(group)
	})
}

// ZipPairs pairs two sequences of different element types, stopping at the shorter one.
func ZipPairs[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	return SequenceFunc[Pair[A, B]](func(visit func(Pair[A, B]) Signal) Signal {
		other := Iter(b)
		defer other.Close()
		stopped := false
		a.Each(func(v A) Signal {
			if !other.MoveNext() {
				return Stop
			}
			w, _ := other.Current()
			if visit(Pair[A, B]{Key: v, Value: w}) == Stop {
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
