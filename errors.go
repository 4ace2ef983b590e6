package spsc

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates that an operation cannot proceed immediately
// because the queue is full (Push), empty (Pop/Peek), or a chunk request
// could not reserve any slots at all (WriteChunk*/ReadChunk with zero
// slots available).
//
// ErrWouldBlock is a control-flow signal, not a failure: callers should
// retry later (with backoff or yield) rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency, the
// same convention the rest of this module's dependency stack uses.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err represents a condition where the
// operation could not proceed right now, but may succeed on retry. It
// returns true for *FullError, *EmptyError, *PeekError, and
// *TooFewSlotsError with Available == 0.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// FullError is returned by Producer.Push when the queue has no free slot.
// It carries the value that could not be stored so the caller can retry
// or discard it without a copy.
type FullError[T any] struct {
	Value T
}

func (e *FullError[T]) Error() string { return "full ring buffer" }

// Is reports that FullError is a would-block condition.
func (e *FullError[T]) Is(target error) bool { return target == ErrWouldBlock }

// EmptyError is returned by Consumer.Pop when the queue has nothing to
// read.
type EmptyError struct{}

func (e *EmptyError) Error() string { return "empty ring buffer" }

// Is reports that EmptyError is a would-block condition.
func (e *EmptyError) Is(target error) bool { return target == ErrWouldBlock }

// PeekError is returned by Consumer.Peek when the queue has nothing to
// read. It is distinct from EmptyError only by type, matching the
// original algorithm's separate PopError/PeekError kinds.
type PeekError struct{}

func (e *PeekError) Error() string { return "empty ring buffer" }

// Is reports that PeekError is a would-block condition.
func (e *PeekError) Is(target error) bool { return target == ErrWouldBlock }

// TooFewSlotsError is returned by WriteChunk, WriteChunkMaybeUninit and
// ReadChunk when fewer than the requested number of slots are available.
// Available holds the number of slots that actually were available
// (possibly zero).
type TooFewSlotsError struct {
	Available int
}

func (e *TooFewSlotsError) Error() string {
	return fmt.Sprintf("only %d slots available in ring buffer", e.Available)
}

// Is reports that TooFewSlotsError is a would-block condition exactly
// when no slots at all were available, per the byte-stream adapters'
// translation rule (a positive Available is a short read/write, not a
// would-block condition).
func (e *TooFewSlotsError) Is(target error) bool {
	return target == ErrWouldBlock && e.Available == 0
}
