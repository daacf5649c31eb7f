package cbprintf

const (
	demotedText = "ERR"
	nilPointer  = "(nil)"
)

// alpha returns the offset added to digit values above 9 so that the result
// lands on 'a' for lower-case conversions and 'A' for upper-case ones.
func alpha(c byte) byte {
	return c&0x60 - '0' - 10 + 1
}

// convert writes num in base into the tail of buf, most significant digit
// first, and returns the digit count. Zero yields a single "0".
func convert(num, base uint64, alpha byte, buf []byte) int {
	i := len(buf)
	for {
		c := byte(num % base)
		if c >= 10 {
			c += alpha
		}
		i--
		buf[i] = c + '0'
		num /= base
		if num == 0 {
			break
		}
	}
	return len(buf) - i
}

func demote(e *emitter, d *directive) {
	d.precision = 0
	emitField(e, d, "", demotedText)
}

func (f Formatter) convertDecimal(e *emitter, d *directive, c byte, args Args, digits []byte) {
	var v uint64
	if c == 'u' {
		u := args.NextUnsigned(d.length)
		switch {
		case !d.length.wide():
			u = uint64(uint32(u))
		case !f.profile.fits(u):
			demote(e, d)
			return
		}
		v = u
	} else {
		s := args.NextSigned(d.length)
		switch {
		case !d.length.wide():
			s = int64(int32(s))
		case !f.profile.fitsSigned(s):
			demote(e, d)
			return
		}
		v = uint64(s)
	}

	prefix := ""
	switch {
	case c != 'u' && f.profile.negative(v):
		v = f.profile.negate(v)
		prefix = "-"
		d.minWidth--
	case d.special == ' ':
		prefix = " "
		d.minWidth--
	case d.special == '+':
		prefix = "+"
		d.minWidth--
	}
	n := convert(f.profile.working(v), 10, 0, digits)
	emitField(e, d, prefix, digits[len(digits)-n:])
}

func (f Formatter) convertHex(e *emitter, d *directive, c byte, args Args, digits []byte) {
	var v uint64
	if c == 'p' {
		p := uint64(args.NextPointer())
		if p == 0 {
			d.precision = 0
			emitField(e, d, "", nilPointer)
			return
		}
		if !f.profile.fits(p) {
			demote(e, d)
			return
		}
		v = p
		d.special = '#'
	} else {
		u := args.NextUnsigned(d.length)
		switch {
		case !d.length.wide():
			u = uint64(uint32(u))
		case !f.profile.fits(u):
			demote(e, d)
			return
		}
		v = u
	}

	prefix := ""
	if d.special == '#' {
		if c&0x20 != 0 {
			prefix = "0x"
		} else {
			prefix = "0X"
		}
		d.minWidth -= 2
	}
	n := convert(f.profile.working(v), 16, alpha(c), digits)
	emitField(e, d, prefix, digits[len(digits)-n:])
}
