package cbprintf

import (
	"io"
	"math"
	"testing"
)

// Regression: formatting into a preallocated sink from a prebuilt cursor must
// not touch the heap, for either profile.
func TestFormatAllocatesZero(t *testing.T) {
	const format = "[%5u.%03d] <%s> %c%-6s|%#010llx|%p|%+hhd|%*d|%%|%lq\n"
	list := NewList(
		Uint(12), Int(7),
		Str("inf"), Char('x'), Str("drv"),
		Uint(0xdeadbeef), Ptr(0x1000),
		Int(-3), Int(-4), Int(42),
	)
	storage := make([]byte, 256)

	cases := []struct {
		name string
		opts Options
	}{
		{"full_count", Options{Profile: ProfileFull, Count: true}},
		{"full", Options{Profile: ProfileFull}},
		{"reduced_count", Options{Profile: ProfileReduced, Count: true}},
		{"reduced", Options{Profile: ProfileReduced}},
	}

	for _, tc := range cases {
		f := New(tc.opts)
		b := NewBuffer(storage)

		allocs := testing.AllocsPerRun(1000, func() {
			b.Reset()
			list.Reset()
			f.Format(b, format, list)
		})
		if allocs != 0 {
			t.Fatalf("%s: expected 0 allocs/format, got %.2f", tc.name, allocs)
		}
		if b.Truncated() || b.Len() == 0 {
			t.Fatalf("%s: unexpected buffer state len=%d", tc.name, b.Len())
		}
	}
}

// Regression: the ring and writer sinks stay allocation free in steady state.
func TestSinksAllocateZero(t *testing.T) {
	list := NewList(Int(-12345), Str("payload"))
	ring := NewRing(make([]byte, 64))
	ws := NewWriterSink(io.Discard)

	allocs := testing.AllocsPerRun(1000, func() {
		list.Reset()
		std.Format(ring, "%d %s\n", list)
	})
	if allocs != 0 {
		t.Fatalf("ring: expected 0 allocs/format, got %.2f", allocs)
	}

	allocs = testing.AllocsPerRun(1000, func() {
		list.Reset()
		std.Format(ws, "%d %s\n", list)
		_ = ws.Flush()
	})
	if allocs != 0 {
		t.Fatalf("writer sink: expected 0 allocs/format, got %.2f", allocs)
	}
}

func TestConvertWritesDigitsFromTheEnd(t *testing.T) {
	cases := []struct {
		num   uint64
		base  uint64
		alpha byte
		want  string
	}{
		{0, 10, 0, "0"},
		{1234567890, 10, 0, "1234567890"},
		{0xdeadbeef, 16, alpha('x'), "deadbeef"},
		{0xdeadbeef, 16, alpha('X'), "DEADBEEF"},
		{1<<64 - 1, 10, 0, "18446744073709551615"},
		{1<<64 - 1, 16, alpha('x'), "ffffffffffffffff"},
	}
	for _, tc := range cases {
		var buf [fullDigits]byte
		n := convert(tc.num, tc.base, tc.alpha, buf[:])
		if got := string(buf[len(buf)-n:]); got != tc.want {
			t.Fatalf("convert(%d, %d): got %q want %q", tc.num, tc.base, got, tc.want)
		}
	}
}

func TestAccumulateSaturates(t *testing.T) {
	d := directive{}
	d.reset()
	for range 20 {
		d.digit('9')
	}
	if d.minWidth != math.MaxInt32 {
		t.Fatalf("expected saturated width %d, got %d", math.MaxInt32, d.minWidth)
	}
}
