package cbprintf_test

import (
	"errors"
	"testing"

	"pkt.systems/cbprintf"
)

type irq uint16

type severity int8

type stateName string

type device struct{ name string }

func (d device) String() string { return "dev:" + d.name }

type busError struct{ code int }

func (e *busError) Error() string { return cbprintf.Sprintf("bus error %d", e.code) }

type optionalPort struct{ id int }

func (p *optionalPort) String() string {
	if p == nil {
		return "no port"
	}
	return cbprintf.Sprintf("port%d", p.id)
}

type brokenStringer struct{}

func (brokenStringer) String() string { panic("unreachable register") }

func TestAnyArgsSurvivesFaultyMethods(t *testing.T) {
	cases := []struct {
		name string
		arg  any
		want string
	}{
		{"nil pointer with value receiver", (*device)(nil), "[(null)]"},
		{"nil error receiver dereferenced", error((*busError)(nil)), "[(null)]"},
		{"non-nil error", &busError{code: 5}, "[bus error 5]"},
		{"nil receiver handled by method", (*optionalPort)(nil), "[no port]"},
		{"panicking method", brokenStringer{}, "[(panic)]"},
	}
	for _, tc := range cases {
		if got := cbprintf.Sprintf("[%s]", tc.arg); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}

	var buf [32]byte
	n := cbprintf.Snprintf(buf[:], "%s|%d", (*device)(nil), 7)
	if got := string(buf[:n]); got != "(null)|7" {
		t.Fatalf("formatting should continue after a nil argument, got %q", got)
	}
}

func TestAnyArgsAdaptsGoValues(t *testing.T) {
	var nilPtr *device
	cases := []struct {
		format string
		args   []any
		want   string
	}{
		{"%d %u", []any{severity(-3), irq(42)}, "-3 42"},
		{"%d %d", []any{true, false}, "1 0"},
		{"%c%c%c", []any{'o', "k?", []byte("!")}, "ok!"},
		{"%s|%s|%s", []any{errors.New("boom"), device{"uart0"}, stateName("idle")}, "boom|dev:uart0|idle"},
		{"%s", []any{nil}, "(null)"},
		{"%s", []any{42}, ""},
		{"%p", []any{nilPtr}, "(nil)"},
		{"%lld", []any{int64(-1) << 40}, "-1099511627776"},
		{"%x", []any{uint8(0xff)}, "ff"},
		{"%d", []any{}, "0"},
	}
	for _, tc := range cases {
		if got := cbprintf.Sprintf(tc.format, tc.args...); got != tc.want {
			t.Fatalf("Sprintf(%q, %v): got %q want %q", tc.format, tc.args, got, tc.want)
		}
	}
}

func TestAnyArgsPointerIsNonZero(t *testing.T) {
	d := &device{name: "spi1"}
	got := cbprintf.Sprintf("%p", d)
	if len(got) < 3 || got[:2] != "0x" {
		t.Fatalf("expected 0x-prefixed pointer, got %q", got)
	}
}

func TestAnyListCursor(t *testing.T) {
	l := cbprintf.AnyArgs(1, "two", 3)
	if l.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", l.Remaining())
	}
	cbprintf.Format(nil, "%d %s", l)
	if l.Remaining() != 1 {
		t.Fatalf("expected 1 remaining, got %d", l.Remaining())
	}
	l.Reset()
	var out []byte
	cbprintf.Format(cbprintf.SinkFunc(func(c byte) { out = append(out, c) }), "%d-%s-%d", l)
	if string(out) != "1-two-3" || l.Remaining() != 0 {
		t.Fatalf("unexpected replay %q remaining=%d", out, l.Remaining())
	}
	var nilList *cbprintf.AnyList
	if nilList.Remaining() != 0 {
		t.Fatalf("nil list should report 0 remaining")
	}
}

func TestListCursor(t *testing.T) {
	l := cbprintf.NewList(cbprintf.Str("abc"), cbprintf.Int(5))
	if got := renderList("%c|%d|%d", l); got != "a|5|0" {
		t.Fatalf("unexpected output %q", got)
	}
	l.Reset()
	if got := renderList("%d|%s", l); got != "0|" {
		t.Fatalf("mismatched kinds should read as zero values, got %q", got)
	}
}

func renderList(format string, l *cbprintf.List) string {
	var out []byte
	cbprintf.Format(cbprintf.SinkFunc(func(c byte) { out = append(out, c) }), format, l)
	return string(out)
}
