package cbprintf

import "math"

type padding uint8

const (
	padZero padding = 1 << iota
	padTail
)

// directive is the state accumulated between '%' and the conversion byte.
type directive struct {
	minWidth  int
	precision int
	padding   padding
	length    Width
	special   byte
}

func (d *directive) reset() {
	*d = directive{minWidth: -1, precision: -1}
}

// digit accumulates a width or precision digit, saturating at the C int
// range.
func (d *directive) digit(c byte) {
	if d.precision >= 0 {
		d.precision = accumulate(d.precision, c)
		return
	}
	if d.minWidth < 0 {
		d.minWidth = 0
	}
	d.minWidth = accumulate(d.minWidth, c)
}

func accumulate(v int, c byte) int {
	v = 10*v + int(c-'0')
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return v
}

// star applies a '*' argument. A negative width becomes its magnitude with
// left-justify; a negative precision stays negative and therefore unset.
func (d *directive) star(v int) {
	if d.precision >= 0 {
		d.precision = v
		return
	}
	d.minWidth = v
	if v < 0 {
		d.minWidth = -v
		d.padding = padTail
	}
}

// modifier folds a length letter into d. It reports false when the letter
// cannot combine with what was already seen.
func (d *directive) modifier(c byte) bool {
	switch {
	case c == 'h' && d.length == WidthShort:
		d.length = WidthChar
	case c == 'l' && d.length == WidthLong:
		d.length = WidthLongLong
	case d.length != WidthInt:
		return false
	case c == 'h':
		d.length = WidthShort
	case c == 'l':
		d.length = WidthLong
	default:
		d.length = WidthSize
	}
	return true
}

// step feeds one byte of an open directive and reports whether the directive
// is still open afterwards.
func (f Formatter) step(e *emitter, d *directive, c byte, args Args, digits []byte) bool {
	switch c {
	case '%':
		e.put('%')
		return false
	case '-':
		d.padding = padTail
	case '.':
		d.precision = 0
		d.padding &^= padZero
	case '0':
		if d.minWidth < 0 && d.precision < 0 && d.padding == 0 {
			d.padding = padZero
			return true
		}
		d.digit(c)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		d.digit(c)
	case '*':
		d.star(int(int32(args.NextSigned(WidthInt))))
	case '+', ' ', '#':
		d.special = c
	case 'h', 'l', 'z':
		if !d.modifier(c) {
			e.abort(c)
			return false
		}
	case 'd', 'i', 'u':
		f.convertDecimal(e, d, c, args, digits)
		return false
	case 'p', 'x', 'X':
		f.convertHex(e, d, c, args, digits)
		return false
	case 's':
		s := args.NextString()
		if d.precision >= 0 && len(s) > d.precision {
			s = s[:d.precision]
		}
		d.precision = 0
		emitField(e, d, "", s)
		return false
	case 'c':
		digits[0] = args.NextChar()
		d.precision = 0
		emitField(e, d, "", digits[:1])
		return false
	default:
		e.abort(c)
		return false
	}
	return true
}
