package cbprintf

import (
	"fmt"
	"reflect"
	"unsafe"
)

const (
	nullString  = "(null)"
	panicString = "(panic)"
)

// AnyList adapts ordinary Go values to Args. Integers of every kind (named
// types included), bools, runes, strings, byte slices, errors, fmt.Stringer
// values and pointer-like values are understood. nil reads as 0, or as
// "(null)" for %s. An Error or String method that panics prints "(null)"
// when its receiver is a nil pointer and "(panic)" otherwise.
type AnyList struct {
	args []any
	next int
}

// AnyArgs returns a cursor over args.
func AnyArgs(args ...any) *AnyList {
	return &AnyList{args: args}
}

// Bind points the cursor at args and rewinds it. The zero AnyList is ready
// for Bind, so a long-lived AnyList can be reused without allocating.
func (l *AnyList) Bind(args []any) {
	l.args = args
	l.next = 0
}

// Reset rewinds the cursor.
func (l *AnyList) Reset() {
	l.next = 0
}

// Remaining returns the number of arguments not consumed yet.
func (l *AnyList) Remaining() int {
	if l == nil {
		return 0
	}
	return len(l.args) - l.next
}

func (l *AnyList) take() any {
	if l == nil || l.next >= len(l.args) {
		return nil
	}
	v := l.args[l.next]
	l.next++
	return v
}

// NextSigned implements Args.
func (l *AnyList) NextSigned(Width) int64 {
	return int64(bitsFromAny(l.take()))
}

// NextUnsigned implements Args.
func (l *AnyList) NextUnsigned(Width) uint64 {
	return bitsFromAny(l.take())
}

// NextPointer implements Args.
func (l *AnyList) NextPointer() uintptr {
	return uintptr(bitsFromAny(l.take()))
}

// NextChar implements Args.
func (l *AnyList) NextChar() byte {
	v := l.take()
	switch x := v.(type) {
	case string:
		if x == "" {
			return 0
		}
		return x[0]
	case []byte:
		if len(x) == 0 {
			return 0
		}
		return x[0]
	}
	return byte(bitsFromAny(v))
}

// NextString implements Args.
func (l *AnyList) NextString() string {
	switch x := l.take().(type) {
	case nil:
		return nullString
	case string:
		return x
	case []byte:
		return string(x)
	case error, fmt.Stringer:
		return describe(x)
	default:
		rv := reflect.ValueOf(x)
		if rv.Kind() == reflect.String {
			return rv.String()
		}
		return ""
	}
}

// describe calls the Error or String method of v and recovers from a panic
// inside it, so a broken argument cannot take down a fault path logging it.
func describe(v any) (s string) {
	defer func() {
		if recover() != nil {
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
				s = nullString
				return
			}
			s = panicString
		}
	}()
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return ""
}

func bitsFromAny(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return uint64(x)
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	case unsafe.Pointer:
		return uint64(uintptr(x))
	case bool:
		if x {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return uint64(rv.Pointer())
	default:
		return 0
	}
}
