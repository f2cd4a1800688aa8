// Package tasks runs deferred work cooperatively: scheduled tasks execute one at a time,
// in the order their delays elapse, on the goroutine that drives the queue.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/jonboulle/clockwork"

	"lazyseq/queues"
)

// ErrQueueClosed is returned by Schedule once the queue no longer accepts work.
var ErrQueueClosed = errors.New("tasks: queue is closed")

// Scheduler defers a task by delay. The returned cancel func stops a task whose delay has
// not elapsed yet and reports whether it did; a task that is already queued or running is
// unaffected.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func() bool, err error)
}

type Option func(*config)

type config struct {
	clock    clockwork.Clock
	log      *slog.Logger
	capacity int
}

// WithClock sets the clock used for task delays.
func WithClock(clock clockwork.Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}

// WithCapacity presizes the ready queue.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// Queue is a Scheduler whose tasks run serially inside Run.
type Queue struct {
	clock clockwork.Clock
	log   *slog.Logger
	ready *queues.Mailbox[func()]
}

var _ Scheduler = (*Queue)(nil)

func NewQueue(opts ...Option) *Queue {
	cfg := &config{
		clock:    clockwork.NewRealClock(),
		capacity: 16,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.DiscardHandler)
	}
	return &Queue{
		clock: cfg.clock,
		log:   cfg.log,
		ready: queues.NewMailbox[func()](cfg.capacity),
	}
}

// Schedule queues task to run after delay. A delay <= 0 queues it for the next turn of Run.
func (q *Queue) Schedule(delay time.Duration, task func()) (func() bool, error) {
	if task == nil {
		panic("tasks.Queue.Schedule: task cannot be nil")
	}
	if delay <= 0 {
		if err := q.ready.Post(task); err != nil {
			return nil, ErrQueueClosed
		}
		return func() bool { return false }, nil
	}
	if q.ready.Closed() {
		return nil, ErrQueueClosed
	}
	timer := q.clock.AfterFunc(delay, func() {
		if err := q.ready.Post(task); err != nil {
			q.log.Debug("dropping task whose delay elapsed after close", "delay", delay)
		}
	})
	return timer.Stop, nil
}

// Run executes ready tasks until the queue is closed and drained or ctx ends.
func (q *Queue) Run(ctx context.Context) {
	for {
		task, ok := q.ready.Receive(ctx)
		if !ok {
			return
		}
		q.execute(task)
	}
}

// Close stops accepting tasks. Tasks already queued still run; timers pending at Close
// drop their task when they fire.
func (q *Queue) Close() {
	q.ready.Close()
}

// Pending returns the number of tasks ready to run.
func (q *Queue) Pending() int {
	return q.ready.Len()
}

func (q *Queue) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("task panicked", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		}
	}()
	task()
}
