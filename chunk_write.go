package spsc

import "iter"

// WriteChunkMaybeUninit is a reservation of n contiguous slots for
// writing, returned by Producer.WriteChunkMaybeUninit. The slots are not
// zeroed or otherwise prepared: they hold whatever was last stored there
// (the zero value, for slots that have never been written, or a value
// left behind by a previous occupant that has since been dropped down to
// its zero value by Pop/ReadChunk.Commit).
//
// The reserved slots are not visible to the Consumer until Commit,
// CommitIterated or CommitAll is called. Dropping the handle without
// committing publishes nothing and leaves any values the caller wrote
// into the slots unreachable by the queue (they are not dropped — this
// mirrors the original algorithm's documented leak-on-uncommitted-write
// behavior).
type WriteChunkMaybeUninit[T any] struct {
	p             *Producer[T]
	first, second []T
	iterated      int
	committed     bool
}

// WriteChunkMaybeUninit returns n slots for writing without any
// preparation. If fewer than n slots are available, returns
// *TooFewSlotsError with the number that actually were.
func (p *Producer[T]) WriteChunkMaybeUninit(n int) (WriteChunkMaybeUninit[T], error) {
	tail := p.tailExact
	need := uint64(n)

	if p.r.capacity-p.r.distance(p.headCache, tail) < need {
		p.headCache = p.r.head.LoadAcquire()
		slots := p.r.capacity - p.r.distance(p.headCache, tail)
		if slots < need {
			return WriteChunkMaybeUninit[T]{}, &TooFewSlotsError{Available: int(slots)}
		}
	}

	start := p.r.collapse(tail)
	firstLen := need
	if room := p.r.capacity - start; room < firstLen {
		firstLen = room
	}
	secondLen := need - firstLen

	return WriteChunkMaybeUninit[T]{
		p:      p,
		first:  p.r.buf[start : start+firstLen],
		second: p.r.buf[0:secondLen],
	}, nil
}

// WriteChunk returns n slots for writing, pre-filled with T's zero value.
// If fewer than n slots are available, returns *TooFewSlotsError with the
// number that actually were.
//
// Unlike the Rust original this method has no Copy/Default trait bound:
// every Go type already has a well-defined zero value and the queue only
// ever invokes Dropper.Drop on a slot when a value is logically read out
// of it (Pop, ReadChunk.Commit), never when a WriteChunk slot is merely
// pre-filled. So pre-filling with the zero value can never trigger an
// unexpected drop, and the safety distinction that motivates the separate
// Rust type collapses to a pure convenience method here.
func (p *Producer[T]) WriteChunk(n int) (WriteChunk[T], error) {
	chunk, err := p.WriteChunkMaybeUninit(n)
	if err != nil {
		return WriteChunk[T]{}, err
	}
	var zero T
	for i := range chunk.first {
		chunk.first[i] = zero
	}
	for i := range chunk.second {
		chunk.second[i] = zero
	}
	return WriteChunk[T](chunk), nil
}

// First returns the first contiguous slice of the reservation. It is
// empty only if the chunk has zero slots.
func (w *WriteChunkMaybeUninit[T]) First() []T { return w.first }

// Second returns the second contiguous slice of the reservation (the
// portion that wrapped around the end of the buffer). It is empty unless
// the reservation wrapped.
func (w *WriteChunkMaybeUninit[T]) Second() []T { return w.second }

// Len returns the total number of slots in the chunk.
func (w *WriteChunkMaybeUninit[T]) Len() int { return len(w.first) + len(w.second) }

// IsEmpty reports whether the chunk has zero slots.
func (w *WriteChunkMaybeUninit[T]) IsEmpty() bool { return len(w.first) == 0 }

// Next advances the single-pass iteration cursor and returns a pointer to
// the next slot in ring order, or (nil, false) once all slots have been
// visited. It does not initialize or consume anything by itself; it is
// purely bookkeeping for CommitIterated.
func (w *WriteChunkMaybeUninit[T]) Next() (*T, bool) {
	if w.iterated < len(w.first) {
		p := &w.first[w.iterated]
		w.iterated++
		return p, true
	}
	j := w.iterated - len(w.first)
	if j < len(w.second) {
		p := &w.second[j]
		w.iterated++
		return p, true
	}
	return nil, false
}

// All returns a single-pass iterator over the chunk's slots in ring
// order, suitable for use in a range statement.
func (w *WriteChunkMaybeUninit[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := w.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Commit publishes the first n slots of the chunk, making them visible to
// the Consumer. The caller must ensure exactly the first n slots (and no
// others) have been initialized with meaningful data; panics if n exceeds
// the chunk's length.
func (w *WriteChunkMaybeUninit[T]) Commit(n int) {
	if n > w.Len() {
		panic("spsc: cannot commit more than chunk size")
	}
	w.commit(uint64(n))
}

// CommitIterated publishes however many slots Next has yielded so far.
func (w *WriteChunkMaybeUninit[T]) CommitIterated() {
	w.commit(uint64(w.iterated))
}

// CommitAll publishes every slot in the chunk.
func (w *WriteChunkMaybeUninit[T]) CommitAll() {
	w.commit(uint64(w.Len()))
}

func (w *WriteChunkMaybeUninit[T]) commit(n uint64) {
	if w.committed {
		panic("spsc: chunk committed twice")
	}
	w.committed = true
	tail := w.p.r.increment(w.p.tailExact, n)
	w.p.r.tail.StoreRelease(tail)
	w.p.tailExact = tail
}

// WriteChunk is the safe counterpart of WriteChunkMaybeUninit: its slots
// start out holding T's zero value, so reading before writing is never
// surprising.
type WriteChunk[T any] WriteChunkMaybeUninit[T]

// First returns the first contiguous slice of the reservation.
func (w *WriteChunk[T]) First() []T { return w.first }

// Second returns the second contiguous slice of the reservation.
func (w *WriteChunk[T]) Second() []T { return w.second }

// Len returns the total number of slots in the chunk.
func (w *WriteChunk[T]) Len() int { return len(w.first) + len(w.second) }

// IsEmpty reports whether the chunk has zero slots.
func (w *WriteChunk[T]) IsEmpty() bool { return len(w.first) == 0 }

// Next advances the single-pass iteration cursor, see
// WriteChunkMaybeUninit.Next.
func (w *WriteChunk[T]) Next() (*T, bool) {
	return (*WriteChunkMaybeUninit[T])(w).Next()
}

// All returns a single-pass iterator over the chunk's slots in ring
// order.
func (w *WriteChunk[T]) All() iter.Seq[*T] {
	return (*WriteChunkMaybeUninit[T])(w).All()
}

// Commit publishes the first n slots of the chunk.
func (w *WriteChunk[T]) Commit(n int) { (*WriteChunkMaybeUninit[T])(w).Commit(n) }

// CommitIterated publishes however many slots Next has yielded so far.
func (w *WriteChunk[T]) CommitIterated() { (*WriteChunkMaybeUninit[T])(w).CommitIterated() }

// CommitAll publishes every slot in the chunk.
func (w *WriteChunk[T]) CommitAll() { (*WriteChunkMaybeUninit[T])(w).CommitAll() }
