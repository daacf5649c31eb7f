package cbprintf

// Width is the C integer type a directive's length modifier selects. The data
// model is LP64: int is 32 bits, long, long long and size_t are 64 bits.
// WidthChar and WidthShort are read at int width, as variadic promotion does.
type Width uint8

const (
	// WidthInt is the width of a directive without a length modifier.
	WidthInt Width = iota
	// WidthChar is selected by hh.
	WidthChar
	// WidthShort is selected by h.
	WidthShort
	// WidthLong is selected by l.
	WidthLong
	// WidthLongLong is selected by ll.
	WidthLongLong
	// WidthSize is selected by z.
	WidthSize
)

// Bits returns the size in bits of an argument declared with w.
func (w Width) Bits() int {
	if w.wide() {
		return 64
	}
	return 32
}

func (w Width) wide() bool {
	return w == WidthLong || w == WidthLongLong || w == WidthSize
}

// String returns the length modifier spelling of w.
func (w Width) String() string {
	switch w {
	case WidthChar:
		return "hh"
	case WidthShort:
		return "h"
	case WidthLong:
		return "l"
	case WidthLongLong:
		return "ll"
	case WidthSize:
		return "z"
	default:
		return ""
	}
}

// Args is the ordered argument cursor consumed by Format. The engine calls
// exactly one accessor per consuming directive ('*' counts as one), in
// left-to-right order, and only once the conversion has committed to a type.
// Implementations return zero values when they run out of arguments.
type Args interface {
	// NextSigned returns the next argument as a signed integer declared with w.
	NextSigned(w Width) int64
	// NextUnsigned returns the next argument as an unsigned integer declared with w.
	NextUnsigned(w Width) uint64
	// NextPointer returns the next argument as a pointer value.
	NextPointer() uintptr
	// NextString returns the next argument as a string.
	NextString() string
	// NextChar returns the next argument as a single byte.
	NextChar() byte
}

type noArgs struct{}

func (noArgs) NextSigned(Width) int64    { return 0 }
func (noArgs) NextUnsigned(Width) uint64 { return 0 }
func (noArgs) NextPointer() uintptr      { return 0 }
func (noArgs) NextString() string        { return "" }
func (noArgs) NextChar() byte            { return 0 }

type argKind uint8

const (
	argNone argKind = iota
	argInt
	argUint
	argPtr
	argStr
	argChar
)

// Arg is one typed argument of a List.
type Arg struct {
	kind argKind
	bits uint64
	str  string
}

// Int returns a signed integer argument.
func Int(v int64) Arg { return Arg{kind: argInt, bits: uint64(v)} }

// Uint returns an unsigned integer argument.
func Uint(v uint64) Arg { return Arg{kind: argUint, bits: v} }

// Ptr returns a pointer argument for %p.
func Ptr(p uintptr) Arg { return Arg{kind: argPtr, bits: uint64(p)} }

// Str returns a string argument for %s.
func Str(s string) Arg { return Arg{kind: argStr, str: s} }

// Char returns a character argument for %c.
func Char(c byte) Arg { return Arg{kind: argChar, bits: uint64(c)} }

// List is an allocation-free Args implementation over typed arguments.
// Numeric accessors accept any numeric Arg and reinterpret its bits; asking a
// string argument for a number, or a number for a string, yields the zero
// value. A List is not safe for concurrent use.
type List struct {
	args []Arg
	next int
}

// NewList returns a cursor positioned at the first of args.
func NewList(args ...Arg) *List {
	return &List{args: args}
}

// Reset rewinds the cursor so the same arguments can be formatted again.
func (l *List) Reset() {
	l.next = 0
}

// Remaining returns the number of arguments not consumed yet.
func (l *List) Remaining() int {
	if l == nil {
		return 0
	}
	return len(l.args) - l.next
}

func (l *List) take() Arg {
	if l == nil || l.next >= len(l.args) {
		return Arg{}
	}
	a := l.args[l.next]
	l.next++
	return a
}

// NextSigned implements Args.
func (l *List) NextSigned(Width) int64 {
	a := l.take()
	if a.kind == argStr {
		return 0
	}
	return int64(a.bits)
}

// NextUnsigned implements Args.
func (l *List) NextUnsigned(Width) uint64 {
	a := l.take()
	if a.kind == argStr {
		return 0
	}
	return a.bits
}

// NextPointer implements Args.
func (l *List) NextPointer() uintptr {
	a := l.take()
	if a.kind == argStr {
		return 0
	}
	return uintptr(a.bits)
}

// NextString implements Args.
func (l *List) NextString() string {
	return l.take().str
}

// NextChar implements Args.
func (l *List) NextChar() byte {
	a := l.take()
	if a.kind == argStr {
		if a.str == "" {
			return 0
		}
		return a.str[0]
	}
	return byte(a.bits)
}
