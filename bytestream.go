package spsc

import "io"

// byteWriter adapts a *Producer[byte] to io.Writer. Go's generics do not
// allow specializing methods on a single instantiation of a generic type
// (there is no equivalent of Rust's impl Write for Producer<u8>), so the
// adapter is a small wrapper type instead of a method directly on
// Producer[byte]; NewWriter constructs one.
type byteWriter struct {
	p *Producer[byte]
}

// NewWriter returns an io.Writer that treats the queue as a byte pipe.
// Write requests a chunk covering all of buf; if fewer slots are
// available, it shrinks the request to what is available (a short
// write) rather than failing outright. If no slots at all are available,
// it reports ErrWouldBlock rather than silently writing nothing.
func NewWriter(p *Producer[byte]) io.Writer {
	return &byteWriter{p: p}
}

func (w *byteWriter) Write(buf []byte) (int, error) {
	chunk, err := w.p.WriteChunkMaybeUninit(len(buf))
	if tooFew, ok := err.(*TooFewSlotsError); ok && tooFew.Available > 0 {
		chunk, err = w.p.WriteChunkMaybeUninit(tooFew.Available)
	}
	if err != nil {
		return 0, ErrWouldBlock
	}
	n := copy(chunk.First(), buf)
	n += copy(chunk.Second(), buf[n:])
	chunk.CommitAll()
	return n, nil
}

// byteReader adapts a *Consumer[byte] to io.Reader; see byteWriter for why
// this is a wrapper type rather than a method on Consumer[byte].
type byteReader struct {
	c *Consumer[byte]
}

// NewReader returns an io.Reader that treats the queue as a byte pipe.
// Read requests a chunk covering all of buf; if fewer slots are
// available, it shrinks the request (a short read). If nothing at all is
// available, it reports ErrWouldBlock.
func NewReader(c *Consumer[byte]) io.Reader {
	return &byteReader{c: c}
}

func (r *byteReader) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	chunk, err := r.c.ReadChunk(len(buf))
	if tooFew, ok := err.(*TooFewSlotsError); ok && tooFew.Available > 0 {
		chunk, err = r.c.ReadChunk(tooFew.Available)
	}
	if err != nil {
		return 0, ErrWouldBlock
	}
	n := copy(buf, chunk.First())
	n += copy(buf[n:], chunk.Second())
	chunk.CommitAll()
	return n, nil
}

var (
	_ io.Writer = (*byteWriter)(nil)
	_ io.Reader = (*byteReader)(nil)
)
