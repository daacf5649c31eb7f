package cbprintf

import "io"

// Ring is a fixed-capacity Sink that keeps the most recent output, dropping
// the oldest bytes once full. It never allocates after construction, which
// makes it suitable as a crash or trace buffer. A Ring is not safe for
// concurrent use.
type Ring struct {
	buf     []byte
	head    int
	size    int
	dropped uint64
}

// NewRing returns a Ring over storage. The capacity is len(storage).
func NewRing(storage []byte) *Ring {
	return &Ring{buf: storage}
}

// Out implements Sink.
func (r *Ring) Out(c byte) {
	if len(r.buf) == 0 {
		r.dropped++
		return
	}
	r.buf[(r.head+r.size)%len(r.buf)] = c
	if r.size < len(r.buf) {
		r.size++
		return
	}
	r.head = (r.head + 1) % len(r.buf)
	r.dropped++
}

// Len returns the number of bytes held.
func (r *Ring) Len() int { return r.size }

// Cap returns the capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Dropped returns how many bytes were overwritten or refused.
func (r *Ring) Dropped() uint64 { return r.dropped }

// Reset empties the ring and clears the drop counter.
func (r *Ring) Reset() {
	r.head, r.size, r.dropped = 0, 0, 0
}

// segments returns the held bytes oldest first as at most two slices.
func (r *Ring) segments() ([]byte, []byte) {
	if r.size == 0 {
		return nil, nil
	}
	end := r.head + r.size
	if end <= len(r.buf) {
		return r.buf[r.head:end], nil
	}
	return r.buf[r.head:], r.buf[:end-len(r.buf)]
}

// AppendTo appends the held bytes, oldest first, to dst.
func (r *Ring) AppendTo(dst []byte) []byte {
	first, second := r.segments()
	dst = append(dst, first...)
	return append(dst, second...)
}

// WriteTo writes the held bytes, oldest first, to w. The ring is left
// untouched.
func (r *Ring) WriteTo(w io.Writer) (int64, error) {
	first, second := r.segments()
	var total int64
	for _, seg := range [2][]byte{first, second} {
		if len(seg) == 0 {
			continue
		}
		n, err := w.Write(seg)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n != len(seg) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
