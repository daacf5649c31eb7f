package cbprintf_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"pkt.systems/cbprintf"
)

type testWriterFunc func([]byte) (int, error)

func (fn testWriterFunc) Write(p []byte) (int, error) {
	return fn(p)
}

func TestSnprintfTruncatesAndReportsFullLength(t *testing.T) {
	var buf [4]byte
	n := cbprintf.Snprintf(buf[:], "%#x", 255)
	if n != 4 {
		t.Fatalf("expected length 4, got %d", n)
	}
	if got := string(buf[:n]); got != "0xff" {
		t.Fatalf("unexpected output %q", got)
	}

	n = cbprintf.Snprintf(buf[:], "%s", "overflowing")
	if n != len("overflowing") {
		t.Fatalf("expected would-be length %d, got %d", len("overflowing"), n)
	}
	if got := string(buf[:]); got != "over" {
		t.Fatalf("unexpected truncated output %q", got)
	}
}

func TestBufferSink(t *testing.T) {
	b := cbprintf.NewBuffer(make([]byte, 6))
	cbprintf.Format(b, "%5d|", cbprintf.NewList(cbprintf.Int(42)))
	if got := string(b.Bytes()); got != "   42|" {
		t.Fatalf("unexpected buffer contents %q", got)
	}
	if b.Truncated() {
		t.Fatalf("buffer should not be truncated")
	}
	cbprintf.Format(b, "x", nil)
	if !b.Truncated() || b.Len() != 7 {
		t.Fatalf("expected truncation at len 7, got truncated=%v len=%d", b.Truncated(), b.Len())
	}
	b.Reset()
	if b.Len() != 0 || len(b.Bytes()) != 0 {
		t.Fatalf("reset did not empty buffer")
	}
}

func TestRingKeepsMostRecentOutput(t *testing.T) {
	r := cbprintf.NewRing(make([]byte, 8))
	cbprintf.Format(r, "abc", nil)
	if got := string(r.AppendTo(nil)); got != "abc" {
		t.Fatalf("unexpected ring contents %q", got)
	}
	cbprintf.Format(r, "%d", cbprintf.NewList(cbprintf.Int(1234567)))
	if got := string(r.AppendTo(nil)); got != "c1234567" {
		t.Fatalf("unexpected wrapped contents %q", got)
	}
	if r.Len() != 8 || r.Cap() != 8 {
		t.Fatalf("unexpected len/cap %d/%d", r.Len(), r.Cap())
	}
	if r.Dropped() != 2 {
		t.Fatalf("expected 2 dropped bytes, got %d", r.Dropped())
	}

	var out bytes.Buffer
	n, err := r.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 8 || out.String() != "c1234567" {
		t.Fatalf("unexpected WriteTo result %d %q", n, out.String())
	}

	r.Reset()
	if r.Len() != 0 || r.Dropped() != 0 || len(r.AppendTo(nil)) != 0 {
		t.Fatalf("reset did not clear ring")
	}
}

func TestRingWithoutStorageCountsDrops(t *testing.T) {
	r := cbprintf.NewRing(nil)
	cbprintf.Format(r, "abc", nil)
	if r.Len() != 0 || r.Dropped() != 3 {
		t.Fatalf("unexpected ring state len=%d dropped=%d", r.Len(), r.Dropped())
	}
}

func TestWriterSinkFlushesInChunks(t *testing.T) {
	var writes int
	var out bytes.Buffer
	w := testWriterFunc(func(p []byte) (int, error) {
		writes++
		return out.Write(p)
	})
	long := strings.Repeat("x", 600)
	n, err := cbprintf.Fprintf(w, "%s|%d", long, 7)
	if err != nil {
		t.Fatalf("Fprintf: %v", err)
	}
	if n != len(long)+2 {
		t.Fatalf("unexpected byte count %d", n)
	}
	if out.String() != long+"|7" {
		t.Fatalf("unexpected output length %d", out.Len())
	}
	if writes != 3 {
		t.Fatalf("expected 3 chunked writes, got %d", writes)
	}
}

func TestWriterSinkStopsAfterError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	s := cbprintf.NewWriterSink(testWriterFunc(func(p []byte) (int, error) {
		calls++
		return 0, boom
	}))
	cbprintf.Format(s, strings.Repeat("y", 300), nil)
	cbprintf.Format(s, strings.Repeat("z", 300), nil)
	if err := s.Flush(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single failing write, got %d", calls)
	}
	if s.Written() != 0 || !errors.Is(s.Err(), boom) {
		t.Fatalf("unexpected sink state written=%d err=%v", s.Written(), s.Err())
	}
}

func TestWriterSinkShortWrite(t *testing.T) {
	s := cbprintf.NewWriterSink(testWriterFunc(func(p []byte) (int, error) {
		return len(p) - 1, nil
	}))
	cbprintf.Format(s, "abcd", nil)
	if err := s.Flush(); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
	if s.Written() != 3 {
		t.Fatalf("expected 3 bytes written, got %d", s.Written())
	}
}

func TestNilSinkDiscards(t *testing.T) {
	if n := cbprintf.Format(nil, "%d", cbprintf.NewList(cbprintf.Int(12))); n != 2 {
		t.Fatalf("expected count 2 with nil sink, got %d", n)
	}
	if n := cbprintf.Printf(cbprintf.Discard, "%s", "abc"); n != 3 {
		t.Fatalf("expected count 3 with Discard, got %d", n)
	}
}
