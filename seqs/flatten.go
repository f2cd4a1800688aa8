package seqs

import "reflect"

// FlattenedSequence expands nested collections found in its parent.
// Slices, arrays and Sequence[any] values are collections; anything else is a leaf.
type FlattenedSequence struct {
	parent Sequence[any]
	depth  int // < 0 means unlimited
}

// Flatten recursively expands every nested collection, so [1, [2, [3, 4], 5]] yields
// 1, 2, 3, 4, 5.
func Flatten(s Sequence[any]) *FlattenedSequence {
	return &FlattenedSequence{parent: s, depth: -1}
}

// FlattenDepth expands at most depth levels of nesting. FlattenDepth(s, 1) is a shallow flatten.
func FlattenDepth(s Sequence[any], depth int) *FlattenedSequence {
	if depth < 0 {
		depth = 0
	}
	return &FlattenedSequence{parent: s, depth: depth}
}

func (f *FlattenedSequence) Each(visit func(any) Signal) Signal {
	return f.parent.Each(func(v any) Signal {
		return flattenInto(v, f.depth, visit)
	})
}

func flattenInto(v any, depth int, visit func(any) Signal) Signal {
	if depth == 0 {
		return visit(v)
	}
	switch x := v.(type) {
	case []any:
		for _, e := range x {
			if flattenInto(e, depth-1, visit) == Stop {
				return Stop
			}
		}
		return Continue
	case Sequence[any]:
		return x.Each(func(e any) Signal {
			return flattenInto(e, depth-1, visit)
		})
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return visit(v)
	}
	for i := 0; i < rv.Len(); i++ {
		if flattenInto(rv.Index(i).Interface(), depth-1, visit) == Stop {
			return Stop
		}
	}
	return Continue
}
