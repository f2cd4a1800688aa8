package seqs

import (
	"context"

	"lazyseq/queues"
)

// EventSource is an external push-based producer.
// Subscribe registers listener and returns a func that detaches it.
type EventSource[T any] interface {
	Subscribe(listener func(T)) (unsubscribe func())
}

// EventSourceFunc adapts a subscribe function to EventSource.
type EventSourceFunc[T any] func(listener func(T)) (unsubscribe func())

func (f EventSourceFunc[T]) Subscribe(listener func(T)) func() {
	return f(listener)
}

// EventSequence presents an EventSource as a Sequence: every event delivered while a
// traversal is running is one element. Events are not replayed; each traversal only sees
// events emitted while it is subscribed.
//
// An EventSequence is a single-use bridge bound to the context it was created with, since
// Each has no context parameter of its own. A traversal ends when the visitor returns Stop
// or that context is done. Once the context is done every later traversal returns at once,
// so create a new EventSequence per subscription.
type EventSequence[T any] struct {
	// ctx bounds every traversal. It is the lifetime of the bridge, not of one call.
	ctx      context.Context
	source   EventSource[T]
	capacity int
}

func FromEvents[T any](ctx context.Context, source EventSource[T]) *EventSequence[T] {
	return &EventSequence[T]{ctx: ctx, source: source, capacity: 64}
}

func (e *EventSequence[T]) Each(visit func(T) Signal) Signal {
	if e.ctx.Err() != nil {
		return Continue
	}
	inbox := queues.NewMailbox[T](e.capacity)
	unsubscribe := e.source.Subscribe(func(v T) {
		// a post racing with the detach below is dropped
		_ = inbox.Post(v)
	})
	defer func() {
		unsubscribe()
		inbox.Close()
	}()

	for {
		v, ok := inbox.Receive(e.ctx)
		if !ok {
			return Continue
		}
		if visit(v) == Stop {
			return Stop
		}
	}
}
