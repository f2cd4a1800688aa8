package queues

import "math/bits"

// Ring is a FIFO backed by a circular array whose capacity is always a power of two.
// Push and Pop are amortized O(1). A Ring is not safe for concurrent use; see Mailbox.
type Ring[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
	mask int // len(buf) - 1
}

// NewRing creates a Ring able to hold initialCapacity elements before growing.
func NewRing[T any](initialCapacity int) *Ring[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := nextPow2(initialCapacity)
	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the backing array and unwraps the contents to start at index 0.
func (r *Ring[T]) grow() {
	newBuf := make([]T, nextPow2(r.size+1))
	if r.head+r.size <= len(r.buf) {
		copy(newBuf, r.buf[r.head:r.head+r.size])
	} else {
		n := copy(newBuf, r.buf[r.head:])
		copy(newBuf[n:], r.buf[:(r.head+r.size)&r.mask])
	}
	clear(r.buf)
	r.buf = newBuf
	r.head = 0
	r.mask = len(newBuf) - 1
}

// Push appends value at the tail.
func (r *Ring[T]) Push(value T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

// Pop removes and returns the oldest element.
func (r *Ring[T]) Pop() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

func (r *Ring[T]) Len() int {
	return r.size
}
