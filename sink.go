package cbprintf

import "io"

// Sink consumes formatted output one byte at a time, in emission order. The
// receiver carries whatever context the sink needs; Format never retains it
// past the call. A Sink must not pull from the Args of the Format call that
// feeds it.
type Sink interface {
	Out(c byte)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(c byte)

// Out calls fn(c).
func (fn SinkFunc) Out(c byte) { fn(c) }

// Discard is a Sink that drops every byte.
var Discard Sink = discard{}

type discard struct{}

func (discard) Out(byte) {}

// Buffer is a bounded Sink over caller storage with snprintf semantics: bytes
// beyond the capacity are counted but not stored.
type Buffer struct {
	dst []byte
	n   int
}

// NewBuffer returns a Buffer writing into dst.
func NewBuffer(dst []byte) *Buffer {
	return &Buffer{dst: dst}
}

// Out implements Sink.
func (b *Buffer) Out(c byte) {
	if b.n < len(b.dst) {
		b.dst[b.n] = c
	}
	b.n++
}

// Len returns the number of bytes offered so far, stored or not.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the stored prefix of the output.
func (b *Buffer) Bytes() []byte { return b.dst[:min(b.n, len(b.dst))] }

// Truncated reports whether output was dropped for lack of room.
func (b *Buffer) Truncated() bool { return b.n > len(b.dst) }

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() { b.n = 0 }

const writerSinkSize = 256

// WriterSink stages output in a fixed array and hands it to an io.Writer
// whenever the array fills up and on Flush. After the first write error it
// drops further output and keeps reporting that error.
type WriterSink struct {
	w       io.Writer
	buf     [writerSinkSize]byte
	n       int
	written int
	err     error
}

// NewWriterSink returns a WriterSink over w. A nil w discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{w: w}
}

// Out implements Sink.
func (s *WriterSink) Out(c byte) {
	if s.err != nil {
		return
	}
	s.buf[s.n] = c
	s.n++
	if s.n == len(s.buf) {
		s.flush()
	}
}

func (s *WriterSink) flush() {
	if s.n == 0 || s.err != nil {
		s.n = 0
		return
	}
	n, err := s.w.Write(s.buf[:s.n])
	s.written += n
	if err == nil && n != s.n {
		err = io.ErrShortWrite
	}
	s.err = err
	s.n = 0
}

// Flush writes any staged bytes and returns the first error seen.
func (s *WriterSink) Flush() error {
	s.flush()
	return s.err
}

// Written returns the number of bytes accepted by the underlying writer.
func (s *WriterSink) Written() int { return s.written }

// Err returns the first write error, if any.
func (s *WriterSink) Err() error { return s.err }
