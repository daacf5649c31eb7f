package cbprintf

type emitter struct {
	out      Sink
	count    int
	counting bool
}

func (e *emitter) put(c byte) {
	e.out.Out(c)
	if e.counting {
		e.count++
	}
}

// abort closes a malformed directive by echoing '%' and the offending byte.
func (e *emitter) abort(c byte) {
	e.put('%')
	e.put(c)
}

// emitField writes one converted field: leading spaces, prefix, zero fill,
// data, trailing spaces. The order is fixed; d.minWidth and d.precision are
// still the raw directive values (minus any prefix length).
func emitField[T string | []byte](e *emitter, d *directive, prefix string, data T) {
	width := d.minWidth
	precision := d.precision
	if precision < 0 && d.padding&padZero != 0 {
		precision = width
	}
	width -= len(data)
	precision -= len(data)
	if precision > 0 {
		width -= precision
	}

	if d.padding&padTail == 0 {
		for ; width > 0; width-- {
			e.put(' ')
		}
	}
	for i := 0; i < len(prefix); i++ {
		e.put(prefix[i])
	}
	for ; precision > 0; precision-- {
		e.put('0')
	}
	for i := 0; i < len(data); i++ {
		e.put(data[i])
	}
	for ; width > 0; width-- {
		e.put(' ')
	}
}
