package cbprintf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Profile selects the integer working width of a Formatter.
type Profile uint8

const (
	// ProfileFull formats with a 64-bit working width and a 21-byte digit
	// buffer. No argument is ever demoted.
	ProfileFull Profile = iota
	// ProfileReduced formats with a 32-bit working width and a 10-byte digit
	// buffer. Arguments declared 64-bit (l, ll, z) and pointers are checked
	// against the working width and print as "ERR" when they do not fit.
	ProfileReduced
)

const (
	reducedDigits = 10
	fullDigits    = 21
)

// ErrUnknownProfile reports a profile name ParseProfile does not recognise.
var ErrUnknownProfile = errors.New("unknown profile")

// ParseProfile converts a textual profile into a Profile value. It accepts
// "full" and "64" for ProfileFull and "reduced", "nano" and "32" for
// ProfileReduced (case insensitive).
func ParseProfile(value string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "full", "64":
		return ProfileFull, nil
	case "reduced", "nano", "32":
		return ProfileReduced, nil
	default:
		return ProfileFull, fmt.Errorf("%w: %q", ErrUnknownProfile, value)
	}
}

// String returns the canonical name of p.
func (p Profile) String() string {
	if p == ProfileReduced {
		return "reduced"
	}
	return "full"
}

func (p Profile) digits() int {
	if p == ProfileReduced {
		return reducedDigits
	}
	return fullDigits
}

// fits reports whether a 64-bit argument survives the round trip through the
// working width.
func (p Profile) fits(v uint64) bool {
	return p != ProfileReduced || v == uint64(uint32(v))
}

func (p Profile) fitsSigned(v int64) bool {
	return p != ProfileReduced || v == int64(int32(v))
}

func (p Profile) negative(v uint64) bool {
	if p == ProfileReduced {
		return int32(v) < 0
	}
	return int64(v) < 0
}

func (p Profile) negate(v uint64) uint64 {
	if p == ProfileReduced {
		return uint64(-uint32(v))
	}
	return -v
}

func (p Profile) working(v uint64) uint64 {
	if p == ProfileReduced {
		return uint64(uint32(v))
	}
	return v
}

// Options configures a Formatter.
type Options struct {
	// Profile selects the working width. The zero value is ProfileFull.
	Profile Profile

	// Count makes Format return the number of bytes it emitted. When false
	// Format always returns 0 and skips the bookkeeping.
	Count bool
}

// Formatter is a configured printf engine. The zero value formats with
// ProfileFull and does not count. A Formatter carries no mutable state and
// may be shared between goroutines; every Format call owns its own sink and
// cursor.
type Formatter struct {
	profile Profile
	count   bool
}

// New returns a Formatter configured by opts.
func New(opts Options) Formatter {
	profile := opts.Profile
	if profile != ProfileReduced {
		profile = ProfileFull
	}
	return Formatter{profile: profile, count: opts.Count}
}

// Profile returns the working-width profile of f.
func (f Formatter) Profile() Profile { return f.profile }

// Counting reports whether Format returns the emitted byte count.
func (f Formatter) Counting() bool { return f.count }

// Format renders format through out, pulling arguments from args. A NUL byte
// in format terminates it like the end of the string does. The return value
// is the number of bytes handed to out when the Formatter counts, 0
// otherwise. A nil out discards the output and a nil args behaves like an
// exhausted cursor.
func (f Formatter) Format(out Sink, format string, args Args) int {
	if out == nil {
		out = Discard
	}
	if args == nil {
		args = noArgs{}
	}
	var buf [fullDigits]byte
	digits := buf[:f.profile.digits()]
	e := emitter{out: out, counting: f.count}
	var d directive
	open := false
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c == 0 {
			break
		}
		if !open {
			if c == '%' {
				d.reset()
				open = true
				continue
			}
			e.put(c)
			continue
		}
		open = f.step(&e, &d, c, args, digits)
	}
	return e.count
}

var std = New(Options{Profile: ProfileFull, Count: true})

// Format renders format through out with ProfileFull and returns the number
// of bytes emitted.
func Format(out Sink, format string, args Args) int {
	return std.Format(out, format, args)
}

// Printf renders format with variadic Go values through out and returns the
// number of bytes emitted. The values are adapted with AnyArgs, which boxes
// them; use Format with a List where allocations matter.
func Printf(out Sink, format string, args ...any) int {
	return std.Format(out, format, AnyArgs(args...))
}

// Fprintf renders format into w through a WriterSink. It returns the number
// of bytes written and the first write error.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	ws := NewWriterSink(w)
	std.Format(ws, format, AnyArgs(args...))
	err := ws.Flush()
	return ws.Written(), err
}

// Snprintf renders format into dst, storing at most len(dst) bytes. It
// returns the length the full output would have had, so a result larger than
// len(dst) signals truncation.
func Snprintf(dst []byte, format string, args ...any) int {
	b := Buffer{dst: dst}
	std.Format(&b, format, AnyArgs(args...))
	return b.Len()
}

// Sprintf renders format into a newly allocated string.
func Sprintf(format string, args ...any) string {
	var sb strings.Builder
	std.Format(SinkFunc(func(c byte) { sb.WriteByte(c) }), format, AnyArgs(args...))
	return sb.String()
}
