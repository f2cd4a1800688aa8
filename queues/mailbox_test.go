package queues

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMailbox_PostReceive(t *testing.T) {
	m := NewMailbox[int](4)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := m.Post(i); err != nil {
			t.Fatalf("Post failed: %v", err)
		}
	}

	for want := 0; want < 10; want++ {
		got, ok := m.Receive(ctx)
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}
	if m.Len() != 0 {
		t.Errorf("expected empty mailbox, got %d", m.Len())
	}
}

func TestMailbox_ReceiveWaitsForPost(t *testing.T) {
	m := NewMailbox[string](1)

	got := make(chan string, 1)
	go func() {
		v, _ := m.Receive(context.Background())
		got <- v
	}()

	select {
	case v := <-got:
		t.Fatalf("Receive returned %q before anything was posted", v)
	case <-time.After(50 * time.Millisecond):
	}

	if err := m.Post("hello"); err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-got:
		if v != "hello" {
			t.Errorf("expected hello, got %q", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Receive did not wake up")
	}
}

func TestMailbox_CloseDrains(t *testing.T) {
	m := NewMailbox[int](4)
	_ = m.Post(1)
	_ = m.Post(2)
	m.Close()

	if err := m.Post(3); !errors.Is(err, ErrMailboxClosed) {
		t.Errorf("expected ErrMailboxClosed, got %v", err)
	}

	ctx := context.Background()
	for _, want := range []int{1, 2} {
		if v, ok := m.Receive(ctx); !ok || v != want {
			t.Errorf("expected %d, got %d (ok=%v)", want, v, ok)
		}
	}
	if _, ok := m.Receive(ctx); ok {
		t.Error("Receive on closed, drained mailbox should return false")
	}

	// idempotent
	m.Close()
	if !m.Closed() {
		t.Error("expected Closed() true")
	}
}

func TestMailbox_PostNeverBlocks(t *testing.T) {
	m := NewMailbox[int](1)

	posted := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			_ = m.Post(i)
		}
		close(posted)
	}()

	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("Post blocked without a receiver")
	}
	if m.Len() != 1000 {
		t.Errorf("expected 1000 queued items, got %d", m.Len())
	}
}

func TestMailbox_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	empty := NewMailbox[int](1)
	if _, ok := empty.Receive(ctx); ok {
		t.Error("Receive with a cancelled context should return false")
	}
}

func TestMailbox_ConcurrentProducers(t *testing.T) {
	m := NewMailbox[int](16)
	const producers, perProducer = 8, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = m.Post(i)
			}
		}()
	}
	go func() {
		wg.Wait()
		m.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	received := 0
	for {
		if _, ok := m.Receive(ctx); !ok {
			break
		}
		received++
	}
	if received != producers*perProducer {
		t.Errorf("expected %d items, got %d", producers*perProducer, received)
	}
}
