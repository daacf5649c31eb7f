package printk

import (
	"io"
	"sync"
	"time"

	"pkt.systems/cbprintf"
)

// lineWriterCap bounds one Write. Longer lines go out in chunks of this size.
const lineWriterCap = 512

// lineWriter assembles one log line. It is a cbprintf.Sink, so messages are
// rendered straight into its array.
type lineWriter struct {
	dst   io.Writer
	buf   [lineWriterCap]byte
	n     int
	args  cbprintf.AnyList
	stamp stampArgs
}

var lineWriterPool = sync.Pool{
	New: func() any {
		return new(lineWriter)
	},
}

func acquireLineWriter(dst io.Writer) *lineWriter {
	lw := lineWriterPool.Get().(*lineWriter)
	lw.dst = dst
	lw.n = 0
	return lw
}

func releaseLineWriter(lw *lineWriter) {
	lw.dst = nil
	lw.n = 0
	lw.args.Bind(nil)
	lineWriterPool.Put(lw)
}

// Out implements cbprintf.Sink.
func (lw *lineWriter) Out(c byte) {
	lw.buf[lw.n] = c
	lw.n++
	if lw.n == len(lw.buf) {
		lw.flush()
	}
}

func (lw *lineWriter) writeString(s string) {
	for i := 0; i < len(s); i++ {
		lw.Out(s[i])
	}
}

func (lw *lineWriter) finishLine() {
	lw.Out('\n')
}

func (lw *lineWriter) commit() {
	lw.flush()
}

func (lw *lineWriter) flush() {
	if lw.n == 0 || lw.dst == nil {
		lw.n = 0
		return
	}
	_, _ = lw.dst.Write(lw.buf[:lw.n])
	lw.n = 0
}

// stampArgs feeds the uptime fields (hours, minutes, seconds, milliseconds,
// microseconds) to the timestamp format without boxing them.
type stampArgs struct {
	v    [5]uint64
	next int
}

func (s *stampArgs) set(d time.Duration) {
	us := uint64(d / time.Microsecond)
	s.v = [5]uint64{
		us / uint64(time.Hour/time.Microsecond),
		us / uint64(time.Minute/time.Microsecond) % 60,
		us / uint64(time.Second/time.Microsecond) % 60,
		us / 1000 % 1000,
		us % 1000,
	}
	s.next = 0
}

func (s *stampArgs) take() uint64 {
	if s.next >= len(s.v) {
		return 0
	}
	v := s.v[s.next]
	s.next++
	return v
}

func (s *stampArgs) NextSigned(cbprintf.Width) int64    { return int64(s.take()) }
func (s *stampArgs) NextUnsigned(cbprintf.Width) uint64 { return s.take() }
func (s *stampArgs) NextPointer() uintptr               { return uintptr(s.take()) }
func (s *stampArgs) NextString() string                 { return "" }
func (s *stampArgs) NextChar() byte                     { return byte(s.take()) }
