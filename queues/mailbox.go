package queues

import (
	"context"
	"errors"
	"sync"
)

// ErrMailboxClosed is returned when posting to a closed Mailbox.
var ErrMailboxClosed = errors.New("queues: mailbox is closed")

// Mailbox is an unbounded goroutine-safe FIFO that lets a single receiver wait for work.
// Post never blocks; the receiver blocks in Receive until an item arrives, the mailbox is
// closed and drained, or its context ends.
type Mailbox[T any] struct {
	mu       sync.Mutex
	ring     *Ring[T]
	closed   bool
	notEmpty chan struct{}
	doneCh   chan struct{}
}

// NewMailbox creates a Mailbox presized for capacity items.
func NewMailbox[T any](capacity int) *Mailbox[T] {
	return &Mailbox[T]{
		ring:     NewRing[T](capacity),
		notEmpty: make(chan struct{}, 1),
		doneCh:   make(chan struct{}),
	}
}

// Post appends value. It fails only once the mailbox is closed.
func (m *Mailbox[T]) Post(value T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMailboxClosed
	}
	m.ring.Push(value)
	m.wake()
	return nil
}

// wake re-arms the level-triggered notEmpty channel. Must be called with mu held.
func (m *Mailbox[T]) wake() {
	if m.ring.Len() == 0 {
		return
	}
	select {
	case m.notEmpty <- struct{}{}:
	default:
	}
}

// TryReceive removes the oldest item if there is one.
func (m *Mailbox[T]) TryReceive() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.ring.Pop()
	if ok {
		m.wake()
	}
	return v, ok
}

// Receive waits for the oldest item. Items posted before Close are still delivered;
// it returns false once the mailbox is closed and empty, or ctx ends.
func (m *Mailbox[T]) Receive(ctx context.Context) (T, bool) {
	for {
		if v, ok := m.TryReceive(); ok {
			return v, true
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, false
		case <-m.doneCh:
			// drain whatever raced in before Close
			return m.TryReceive()
		case <-m.notEmpty:
		}
	}
}

// Len returns the number of queued items.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Len()
}

// Close rejects further posts. Queued items remain receivable. Close is idempotent.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.doneCh)
}

func (m *Mailbox[T]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
