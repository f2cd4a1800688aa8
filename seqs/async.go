package seqs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"lazyseq/tasks"
)

var (
	// ErrCanceled is reported by a Handle whose traversal was cancelled.
	ErrCanceled = errors.New("seqs: async traversal canceled")
	// ErrVisitorPanic wraps a panic raised by the visitor or the parent sequence during an
	// async traversal.
	ErrVisitorPanic = errors.New("seqs: async traversal panicked")
)

type AsyncOption func(*asyncConfig)

type asyncConfig struct {
	delay     time.Duration
	scheduler tasks.Scheduler
	clock     clockwork.Clock
	log       *slog.Logger
}

// WithDelay sets the pause before each delivery. The default of zero defers every delivery
// to the next turn of the scheduler.
func WithDelay(d time.Duration) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.delay = d
	}
}

// WithScheduler delivers through a shared scheduler, interleaving with its other tasks.
// The scheduler's own clock then governs delays and WithClock is ignored.
func WithScheduler(s tasks.Scheduler) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.scheduler = s
	}
}

// WithClock sets the clock of the private task queue used when no scheduler is given.
func WithClock(clock clockwork.Clock) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.clock = clock
	}
}

func WithLogger(log *slog.Logger) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.log = log
	}
}

// AsyncSequence replays a sequence through a task scheduler, one element per task.
// Deliveries are spread out in time but always arrive in the parent's order.
//
// AsyncSequence is not itself a Sequence: its Each returns a Handle instead of blocking.
type AsyncSequence[T any] struct {
	parent Sequence[T]
	cfg    asyncConfig
}

func Async[T any](s Sequence[T], opts ...AsyncOption) *AsyncSequence[T] {
	cfg := asyncConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.delay < 0 {
		cfg.delay = 0
	}
	if cfg.clock == nil {
		cfg.clock = clockwork.NewRealClock()
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.DiscardHandler)
	}
	return &AsyncSequence[T]{parent: s, cfg: cfg}
}

// Each starts delivering elements to visit and returns immediately. Delivery ends when the
// parent is exhausted, visit returns Stop, the handle is cancelled, or visit panics.
func (a *AsyncSequence[T]) Each(visit func(T) Signal) *Handle {
	t := &asyncTraversal[T]{
		parent: a.parent,
		visit:  visit,
		delay:  a.cfg.delay,
		sched:  a.cfg.scheduler,
		log:    a.cfg.log,
		handle: newHandle(),
	}
	t.handle.cancelFn = t.cancel
	if t.sched == nil {
		t.own = tasks.NewQueue(tasks.WithClock(a.cfg.clock), tasks.WithLogger(a.cfg.log))
		t.sched = t.own
		go t.own.Run(context.Background())
	}
	t.schedule()
	return t.handle
}

// Handle observes and controls one async traversal.
type Handle struct {
	done     chan struct{}
	err      error
	canceled atomic.Bool
	cancelFn func()
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Done is closed when the traversal has ended.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns nil while running or after a normal end (exhaustion or a Stop from the
// visitor), ErrCanceled after Cancel, or an error wrapping ErrVisitorPanic.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until the traversal ends or ctx is done.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops scheduling further deliveries. A delivery already in progress completes.
func (h *Handle) Cancel() {
	if h.canceled.CompareAndSwap(false, true) {
		h.cancelFn()
	}
}

func (h *Handle) complete(err error) {
	h.err = err
	close(h.done)
}

type asyncTraversal[T any] struct {
	parent Sequence[T]
	visit  func(T) Signal
	delay  time.Duration
	sched  tasks.Scheduler
	own    *tasks.Queue
	log    *slog.Logger
	handle *Handle

	it         Iterator[T] // only touched from scheduled tasks
	mu         sync.Mutex
	pending    func() bool
	finishOnce sync.Once
}

func (t *asyncTraversal[T]) schedule() {
	cancel, err := t.sched.Schedule(t.delay, t.step)
	if err != nil {
		t.log.Warn("async traversal could not schedule its next delivery", "error", err)
		go t.finish(fmt.Errorf("seqs: scheduling delivery: %w", err))
		return
	}
	t.mu.Lock()
	t.pending = cancel
	t.mu.Unlock()
	// Cancel may have run between the visit and the store above and found nothing to stop
	if t.handle.canceled.Load() {
		t.cancel()
	}
}

func (t *asyncTraversal[T]) step() {
	if t.handle.canceled.Load() {
		t.finish(ErrCanceled)
		return
	}
	more, err := t.deliver()
	switch {
	case err != nil:
		t.finish(err)
	case !more:
		t.finish(nil)
	default:
		t.schedule()
	}
}

// deliver pulls one element and hands it to the visitor.
func (t *asyncTraversal[T]) deliver() (more bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\nStack: %s", ErrVisitorPanic, r, debug.Stack())
		}
	}()
	if t.it == nil {
		t.it = Iter(t.parent)
	}
	if !t.it.MoveNext() {
		return false, nil
	}
	v, err := t.it.Current()
	if err != nil {
		return false, err
	}
	return t.visit(v) == Continue, nil
}

func (t *asyncTraversal[T]) cancel() {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()
	if pending == nil || !pending() {
		// the next step is queued or running and will observe the cancellation
		return
	}
	if _, err := t.sched.Schedule(0, func() { t.finish(ErrCanceled) }); err != nil {
		t.finish(ErrCanceled)
	}
}

func (t *asyncTraversal[T]) finish(err error) {
	t.finishOnce.Do(func() {
		if t.it != nil {
			t.it.Close()
		}
		t.log.Debug("async traversal finished", "error", err)
		t.handle.complete(err)
		if t.own != nil {
			t.own.Close()
		}
	})
}
