package spsc

import "iter"

// ReadChunk is a reservation of n contiguous slots for reading, returned
// by Consumer.ReadChunk. The slots remain owned by the queue (and are
// still visible to a later, overlapping ReadChunk request) until Commit,
// CommitIterated or CommitAll is called; dropping the handle without
// committing leaves the queue's state unchanged.
type ReadChunk[T any] struct {
	c             *Consumer[T]
	first, second []T
	iterated      int
	committed     bool
}

// ReadChunk returns n slots for reading. If fewer than n slots are
// available, returns *TooFewSlotsError with the number that actually
// were.
func (c *Consumer[T]) ReadChunk(n int) (ReadChunk[T], error) {
	head := c.headExact
	need := uint64(n)

	if c.r.distance(head, c.tailCache) < need {
		c.tailCache = c.r.tail.LoadAcquire()
		slots := c.r.distance(head, c.tailCache)
		if slots < need {
			return ReadChunk[T]{}, &TooFewSlotsError{Available: int(slots)}
		}
	}

	start := c.r.collapse(head)
	firstLen := need
	if room := c.r.capacity - start; room < firstLen {
		firstLen = room
	}
	secondLen := need - firstLen

	return ReadChunk[T]{
		c:      c,
		first:  c.r.buf[start : start+firstLen],
		second: c.r.buf[0:secondLen],
	}, nil
}

// First returns the first contiguous slice of the reservation. It is
// empty only if the chunk has zero slots.
func (r *ReadChunk[T]) First() []T { return r.first }

// Second returns the second contiguous slice of the reservation (the
// portion that wrapped around the end of the buffer).
func (r *ReadChunk[T]) Second() []T { return r.second }

// Len returns the total number of slots in the chunk.
func (r *ReadChunk[T]) Len() int { return len(r.first) + len(r.second) }

// IsEmpty reports whether the chunk has zero slots.
func (r *ReadChunk[T]) IsEmpty() bool { return len(r.first) == 0 }

// Next advances the single-pass iteration cursor and returns a pointer to
// the next slot in ring order, or (nil, false) once all slots have been
// visited.
func (r *ReadChunk[T]) Next() (*T, bool) {
	if r.iterated < len(r.first) {
		p := &r.first[r.iterated]
		r.iterated++
		return p, true
	}
	j := r.iterated - len(r.first)
	if j < len(r.second) {
		p := &r.second[j]
		r.iterated++
		return p, true
	}
	return nil, false
}

// All returns a single-pass iterator over the chunk's slots in ring
// order, suitable for use in a range statement.
func (r *ReadChunk[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := r.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Commit drops the first n slots of the chunk (calling Dropper.Drop on
// each, if T implements it) and makes the corresponding space available
// for writing again. Panics if n exceeds the chunk's length.
func (r *ReadChunk[T]) Commit(n int) {
	if n > r.Len() {
		panic("spsc: cannot commit more than chunk size")
	}
	r.commit(n)
}

// CommitIterated drops however many slots Next has yielded so far.
func (r *ReadChunk[T]) CommitIterated() {
	r.commit(r.iterated)
}

// CommitAll drops every slot of the chunk.
func (r *ReadChunk[T]) CommitAll() {
	r.commit(r.Len())
}

func (r *ReadChunk[T]) commit(n int) {
	if r.committed {
		panic("spsc: chunk committed twice")
	}
	r.committed = true

	var zero T
	firstLen := n
	if firstLen > len(r.first) {
		firstLen = len(r.first)
	}
	for i := range firstLen {
		dropValue(&r.first[i])
		r.first[i] = zero
	}
	secondLen := n - firstLen
	for i := range secondLen {
		dropValue(&r.second[i])
		r.second[i] = zero
	}

	head := r.c.r.increment(r.c.headExact, uint64(n))
	r.c.r.head.StoreRelease(head)
	r.c.headExact = head
}
