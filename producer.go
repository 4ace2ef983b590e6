package spsc

// Producer is the exclusive write endpoint of a Queue. It can be moved
// between goroutines but must not be used concurrently from more than one
// at a time.
type Producer[T any] struct {
	r *ring[T]

	// tailExact is authoritative: only the Producer writes r.tail.
	tailExact uint64
	// headCache is a lower bound on r.head, refreshed only on the slow
	// path. It can only be stale in the "more space than I last saw"
	// direction.
	headCache uint64

	closed bool
}

// Push attempts to move value into the queue. It returns a *FullError[T]
// wrapping value back to the caller if the queue has no free slot.
func (p *Producer[T]) Push(value T) error {
	tail, ok := p.nextTail()
	if !ok {
		return &FullError[T]{Value: value}
	}
	p.r.buf[p.r.collapse(tail)] = value
	tail = p.r.increment1(tail)
	p.r.tail.StoreRelease(tail)
	p.tailExact = tail
	return nil
}

// IsFull reports whether there is no slot available for writing.
func (p *Producer[T]) IsFull() bool {
	_, ok := p.nextTail()
	return !ok
}

// Slots returns the number of slots currently available for writing.
// Refreshes the cached head, unlike IsFull which may avoid the atomic
// load entirely.
func (p *Producer[T]) Slots() int {
	p.headCache = p.r.head.LoadAcquire()
	return int(p.r.capacity - p.r.distance(p.headCache, p.tailExact))
}

// nextTail returns the tail position to write to next, refreshing the
// cached head on the slow path only.
func (p *Producer[T]) nextTail() (uint64, bool) {
	tail := p.tailExact
	if p.r.distance(p.headCache, tail) == p.r.capacity {
		p.headCache = p.r.head.LoadAcquire()
		if p.r.distance(p.headCache, tail) == p.r.capacity {
			return 0, false
		}
	}
	return tail, true
}

// Close releases this endpoint's share of the underlying queue. After
// Close, the Producer must not be used again. The last endpoint to Close
// drops any elements still held by the queue.
func (p *Producer[T]) Close() {
	if p.closed {
		panic("spsc: Producer closed twice")
	}
	p.closed = true
	p.r.release()
}
