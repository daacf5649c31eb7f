package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// interpretEscapes expands the backslash escapes of Go and C string literals
// in s: \a \b \f \n \r \t \v \\ \' \", \xHH, \NNN octal and \uXXXX. \000
// yields a NUL byte, which ends the format at that point.
func interpretEscapes(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out := make([]byte, 0, len(s))
	for tail := s; tail != ""; {
		if tail[0] != '\\' {
			out = append(out, tail[0])
			tail = tail[1:]
			continue
		}
		if len(tail) > 1 && (tail[1] == '\'' || tail[1] == '"') {
			out = append(out, tail[1])
			tail = tail[2:]
			continue
		}
		offset := len(s) - len(tail)
		value, multibyte, rest, err := strconv.UnquoteChar(tail, 0)
		if err != nil {
			return "", fmt.Errorf("bad escape at offset %d in %q: %w", offset, s, err)
		}
		if multibyte {
			out = utf8.AppendRune(out, value)
		} else {
			out = append(out, byte(value))
		}
		tail = rest
	}
	return string(out), nil
}
