package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pkt.systems/cbprintf"
)

// ErrBadArg reports a command-line argument that does not parse as the
// number its conversion asked for.
var ErrBadArg = errors.New("invalid numeric argument")

// textArgs reads conversion arguments from command-line words. Numbers accept
// the 0x, 0o, 0b and leading-0 octal prefixes and a leading quote yields the
// code of the next character, as in printf(1). Parse failures read as 0 and
// are kept for the caller to report.
type textArgs struct {
	words []string
	next  int
	errs  []error
}

func newTextArgs(words []string) *textArgs {
	return &textArgs{words: words}
}

func (a *textArgs) take() (string, bool) {
	if a.next >= len(a.words) {
		return "", false
	}
	w := a.words[a.next]
	a.next++
	return w, true
}

// remaining returns the number of words no conversion consumed.
func (a *textArgs) remaining() int {
	return len(a.words) - a.next
}

func (a *textArgs) fail(word string, err error) {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	a.errs = append(a.errs, fmt.Errorf("%w: argument %d %q: %v", ErrBadArg, a.next, word, err))
}

func charCode(word string) (uint64, bool) {
	if !strings.HasPrefix(word, "'") && !strings.HasPrefix(word, `"`) {
		return 0, false
	}
	if len(word) < 2 {
		return 0, true
	}
	return uint64(word[1]), true
}

func (a *textArgs) NextSigned(cbprintf.Width) int64 {
	word, ok := a.take()
	if !ok {
		return 0
	}
	if v, ok := charCode(word); ok {
		return int64(v)
	}
	v, err := strconv.ParseInt(word, 0, 64)
	if err == nil {
		return v
	}
	if u, uerr := strconv.ParseUint(word, 0, 64); uerr == nil {
		return int64(u)
	}
	a.fail(word, err)
	return 0
}

func (a *textArgs) NextUnsigned(cbprintf.Width) uint64 {
	word, ok := a.take()
	if !ok {
		return 0
	}
	return a.unsigned(word)
}

func (a *textArgs) unsigned(word string) uint64 {
	if v, ok := charCode(word); ok {
		return v
	}
	v, err := strconv.ParseUint(word, 0, 64)
	if err == nil {
		return v
	}
	if s, serr := strconv.ParseInt(word, 0, 64); serr == nil {
		return uint64(s)
	}
	a.fail(word, err)
	return 0
}

func (a *textArgs) NextPointer() uintptr {
	word, ok := a.take()
	if !ok {
		return 0
	}
	return uintptr(a.unsigned(word))
}

func (a *textArgs) NextString() string {
	word, _ := a.take()
	return word
}

func (a *textArgs) NextChar() byte {
	word, ok := a.take()
	if !ok || word == "" {
		return 0
	}
	return word[0]
}
