// Package spsc implements a bounded, lock-free, wait-free
// single-producer single-consumer (SPSC) ring buffer.
//
// A Queue consists of two parts: a [Producer] for writing into the ring
// buffer and a [Consumer] for reading from it. A fixed-capacity buffer is
// allocated once, at construction; after that, successful Push and Pop
// calls allocate no more memory, unless T does so internally. A Push to a
// full queue and a chunk request that finds too few slots return a newly
// allocated error value. Reading and writing are
// lock-free and wait-free: every method returns immediately. Pushing to a
// full queue and popping from an empty one both return errors rather than
// blocking or overwriting data.
//
// Only a single goroutine may hold the Producer at a time, and only a
// single goroutine may hold the Consumer at a time (the same goroutine
// may hold both). Neither endpoint can wait for the other to make
// progress; a caller that needs to wait must poll, sleep, or use its own
// signaling.
//
// # Quick Start
//
//	q := spsc.New[int](2)
//	p, c := q.Split()
//
//	_ = p.Push(1)
//	_ = p.Push(2)
//	err := p.Push(3) // *spsc.FullError[int]{Value: 3}
//
//	go func() {
//	    v, _ := c.Pop() // 1
//	    v, _ = c.Pop()  // 2
//	    _, err := c.Pop() // *spsc.EmptyError{}
//	}()
//
// # Polling with backoff
//
// Since the queue never blocks, a goroutine that needs to wait for space
// or data should back off between attempts rather than spinning as fast
// as possible:
//
//	func produce(p *spsc.Producer[Frame], frames <-chan Frame) {
//	    backoff := iox.Backoff{}
//	    for f := range frames {
//	        for p.Push(f) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}
//
//	func consume(c *spsc.Consumer[Frame]) {
//	    backoff := iox.Backoff{}
//	    for {
//	        f, err := c.Pop()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(f)
//	    }
//	}
//
// For a tight retry loop where the wait is expected to be short — the other
// endpoint is on another core and about to catch up — [code.hybscloud.com/spin.Wait]
// issues CPU pause instructions instead of sleeping:
//
//	func produceSpin(p *spsc.Producer[Frame], frames <-chan Frame) {
//	    for f := range frames {
//	        sw := spin.Wait{}
//	        for p.Push(f) != nil {
//	            sw.Once()
//	        }
//	    }
//	}
//
// # Bulk transfer
//
// [Producer.WriteChunk] and [Consumer.ReadChunk] reserve a batch of
// contiguous slots, split across the wrap point if necessary, without the
// per-element overhead of repeated Push/Pop:
//
//	if chunk, err := p.WriteChunk(3); err == nil {
//	    first, second := chunk.First(), chunk.Second()
//	    first[0] = 20
//	    // ... fill the rest of first and second ...
//	    chunk.CommitAll() // publish the whole batch in one index store
//	}
package spsc
