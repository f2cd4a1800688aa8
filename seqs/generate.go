package seqs

// GeneratedSequence produces element i by calling a pure function of i, for i in [0, n).
type GeneratedSequence[T any] struct {
	gen    func(int) T
	length int
}

var _ RandomAccess[int] = (*GeneratedSequence[int])(nil)

// GenerateN builds a sequence of n elements where element i is gen(i).
func GenerateN[T any](gen func(int) T, n int) *GeneratedSequence[T] {
	if n < 0 {
		n = 0
	}
	return &GeneratedSequence[T]{gen: gen, length: n}
}

func (g *GeneratedSequence[T]) Each(visit func(T) Signal) Signal {
	for i := 0; i < g.length; i++ {
		if visit(g.gen(i)) == Stop {
			return Stop
		}
	}
	return Continue
}

func (g *GeneratedSequence[T]) Get(i int) T {
	return g.gen(i)
}

func (g *GeneratedSequence[T]) Len() int {
	return g.length
}

// InfiniteSequence is an unbounded generated sequence. It has no length; a traversal only
// ends when the visitor returns Stop, so consume it through Take, TakeWhile, Find or similar.
type InfiniteSequence[T any] struct {
	gen func(int) T
}

// Generate builds an unbounded sequence where element i is gen(i).
func Generate[T any](gen func(int) T) *InfiniteSequence[T] {
	return &InfiniteSequence[T]{gen: gen}
}

func (g *InfiniteSequence[T]) Each(visit func(T) Signal) Signal {
	for i := 0; ; i++ {
		if visit(g.gen(i)) == Stop {
			return Stop
		}
	}
}

func (g *InfiniteSequence[T]) Get(i int) T {
	return g.gen(i)
}

// Range yields start, start+step, ... up to but excluding end. A zero step yields nothing.
func Range(start, end, step int) *GeneratedSequence[int] {
	n := 0
	switch {
	case step > 0 && end > start:
		n = (end - start + step - 1) / step
	case step < 0 && end < start:
		n = (start - end - step - 1) / -step
	}
	return GenerateN(func(i int) int { return start + i*step }, n)
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) *GeneratedSequence[T] {
	return GenerateN(func(int) T { return value }, count)
}
