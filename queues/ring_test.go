package queues_test

import (
	"testing"

	"lazyseq/queues"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		name            string
		initialCapacity int
	}{
		{"Negative capacity", -1},
		{"Zero capacity", 0},
		{"Capacity 1", 1},
		{"Capacity 3 (round up)", 3},
		{"Capacity 9 (round up)", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := queues.NewRing[int](tt.initialCapacity)
			if r.Len() != 0 {
				t.Errorf("expected len 0, got %d", r.Len())
			}
			if _, ok := r.Pop(); ok {
				t.Error("Pop on empty ring should return false")
			}
		})
	}
}

func TestRing_WrapAroundGrow(t *testing.T) {
	r := queues.NewRing[int](4)
	for i := 1; i <= 4; i++ {
		r.Push(i)
	}
	r.Pop()
	r.Pop()
	// [5, 6, 3, 4] with head at index 2
	r.Push(5)
	r.Push(6)

	// grows from the wrapped state
	r.Push(7)
	if r.Len() != 5 {
		t.Fatalf("expected len 5, got %d", r.Len())
	}

	for i, want := range []int{3, 4, 5, 6, 7} {
		if v, ok := r.Pop(); !ok || v != want {
			t.Errorf("step %d: expected %d, got %v (ok=%v)", i, want, v, ok)
		}
	}
}

func TestRing_PopReleasesSlot(t *testing.T) {
	r := queues.NewRing[string](2)
	r.Push("a")
	r.Push("b")
	r.Push("c")
	r.Pop()

	if r.Len() != 2 {
		t.Errorf("expected len 2 after Pop, got %d", r.Len())
	}
	r.Push("d")
	for _, want := range []string{"b", "c", "d"} {
		if v, _ := r.Pop(); v != want {
			t.Errorf("expected %q, got %q", want, v)
		}
	}
}
