package spsc_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veloxq/spsc"
)

// TestPushPopBasic covers scenario 1 from the spec: capacity 2, push
// 1, 2, 3 (last fails with Full), then pop 1, 2, Empty.
func TestPushPopBasic(t *testing.T) {
	q := spsc.New[int](2)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	if err := p.Push(1); err != nil {
		t.Fatalf("Push(1): %v", err)
	}
	if err := p.Push(2); err != nil {
		t.Fatalf("Push(2): %v", err)
	}
	err := p.Push(3)
	var full *spsc.FullError[int]
	if !errors.As(err, &full) || full.Value != 3 {
		t.Fatalf("Push(3): got %v, want FullError{3}", err)
	}
	if !spsc.IsWouldBlock(err) {
		t.Fatalf("Push(3): want IsWouldBlock true")
	}

	if v, err := c.Pop(); err != nil || v != 1 {
		t.Fatalf("Pop: got (%v, %v), want (1, nil)", v, err)
	}
	if v, err := c.Pop(); err != nil || v != 2 {
		t.Fatalf("Pop: got (%v, %v), want (2, nil)", v, err)
	}
	if _, err := c.Pop(); !errors.Is(err, spsc.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestZeroCapacityAlwaysFullAndEmpty covers invariant 5 and the
// capacity==0 open question: every push is Full, every pop is Empty.
func TestZeroCapacityAlwaysFullAndEmpty(t *testing.T) {
	q := spsc.New[int](0)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	if !p.IsFull() {
		t.Fatal("capacity 0: want IsFull true")
	}
	if !c.IsEmpty() {
		t.Fatal("capacity 0: want IsEmpty true")
	}
	if err := p.Push(1); !errors.Is(err, spsc.ErrWouldBlock) {
		t.Fatalf("Push on capacity 0: got %v, want ErrWouldBlock", err)
	}
	if _, err := c.Pop(); !errors.Is(err, spsc.ErrWouldBlock) {
		t.Fatalf("Pop on capacity 0: got %v, want ErrWouldBlock", err)
	}
	if _, err := c.ReadChunk(1); !errors.Is(err, spsc.ErrWouldBlock) {
		t.Fatal("ReadChunk(1) on capacity 0: want ErrWouldBlock")
	}
}

// TestRoundTrip is the round-trip law from spec.md §8: pushing a sequence
// then popping it back yields the same sequence, for any length up to
// capacity.
func TestRoundTrip(t *testing.T) {
	const capacity = 16
	xs := make([]int, capacity)
	for i := range xs {
		xs[i] = i * i
	}

	q := spsc.New[int](capacity)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	for _, x := range xs {
		if err := p.Push(x); err != nil {
			t.Fatalf("Push(%d): %v", x, err)
		}
	}

	got := make([]int, 0, capacity)
	for range xs {
		v, err := c.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		got = append(got, v)
	}

	if diff := cmp.Diff(xs, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestPeekIdempotent is the idempotence law: repeated Peek without an
// intervening Pop yields the same reference.
func TestPeekIdempotent(t *testing.T) {
	q := spsc.New[int](1)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	if err := p.Push(42); err != nil {
		t.Fatalf("Push: %v", err)
	}
	first, err := c.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	second, err := c.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if first != second {
		t.Fatalf("Peek returned different pointers: %p != %p", first, second)
	}
	if *first != 42 {
		t.Fatalf("Peek: got %d, want 42", *first)
	}
}

// TestSlotsAgreeWithFullEmpty checks the law "is_empty() <-> slots()==0"
// and its Producer-side counterpart, across a wrap-around sequence.
func TestSlotsAgreeWithFullEmpty(t *testing.T) {
	const capacity = 3
	q := spsc.New[int](capacity)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	for round := range 5 {
		for i := range capacity {
			if err := p.Push(round*capacity + i); err != nil {
				t.Fatalf("round %d Push(%d): %v", round, i, err)
			}
		}
		if !p.IsFull() || p.Slots() != 0 {
			t.Fatalf("round %d: want full, got IsFull=%v Slots=%d", round, p.IsFull(), p.Slots())
		}
		if err := p.Push(999); !errors.Is(err, spsc.ErrWouldBlock) {
			t.Fatalf("round %d: push on full queue: %v", round, err)
		}
		for i := range capacity {
			if _, err := c.Pop(); err != nil {
				t.Fatalf("round %d Pop(%d): %v", round, i, err)
			}
		}
		if !c.IsEmpty() || c.Slots() != 0 {
			t.Fatalf("round %d: want empty, got IsEmpty=%v Slots=%d", round, c.IsEmpty(), c.Slots())
		}
	}
}

// TestSlotsSumToCapacityAtQuiescence is invariant 2: once both endpoints
// have observed each other, producer slots + consumer slots == capacity.
func TestSlotsSumToCapacityAtQuiescence(t *testing.T) {
	const capacity = 5
	q := spsc.New[int](capacity)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	for i := range 3 {
		if err := p.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if got := p.Slots() + c.Slots(); got != capacity {
		t.Fatalf("Slots sum: got %d, want %d", got, capacity)
	}
}

// TestCapacityUnrounded verifies the doubled-range encoding supports
// arbitrary capacities, unlike the teacher's power-of-two masked queues.
func TestCapacityUnrounded(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 5, 7, 1000} {
		q := spsc.New[int](capacity)
		if q.Capacity() != capacity {
			t.Errorf("Capacity(%d): got %d", capacity, q.Capacity())
		}
	}
}
