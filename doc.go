// Package cbprintf provides a minimal-footprint printf engine that streams
// its output one byte at a time into a caller-supplied Sink. The engine never
// buffers the whole result and never allocates: the directive state, the
// digit scratch buffer and the conversion result all live on the stack of a
// single Format call, which keeps it callable from recover blocks, crash
// dump writers and other paths where the rest of the runtime is suspect.
//
// # Design overview
//
//   - Two-state scanner: literal bytes are forwarded until a '%' opens a
//     directive; the directive loop accumulates flags, width, precision and
//     length until a conversion byte closes it.
//   - In-band recovery: a malformed directive emits '%' and the offending
//     byte, then scanning resumes. Nothing aborts the call.
//   - Typed cursor: arguments are pulled through Args, exactly once per
//     consuming directive and strictly left to right. List is the
//     allocation-free cursor; AnyArgs adapts ordinary Go values.
//   - Profiles: ProfileReduced works in 32 bits with a 10-byte digit buffer
//     and degrades 64-bit arguments that do not fit to "ERR";
//     ProfileFull works in 64 bits with a 21-byte buffer.
//
// Supported conversions are %d %i %u %x %X %p %s %c and %%, with the flags
// '-', '0', '+', ' ', '#', a width and precision (literal or '*'), and the
// length modifiers h, hh, l, ll and z. There is no floating point support.
//
// # Usage
//
//	f := cbprintf.New(cbprintf.Options{Profile: cbprintf.ProfileReduced, Count: true})
//	args := cbprintf.NewList(cbprintf.Str("RAX"), cbprintf.Uint(0xdeadbeef))
//	f.Format(cbprintf.SinkFunc(uartPutc), "%s: 0x%08x\n", args)
//
// Convenience wrappers mirror the familiar family:
//
//	cbprintf.Fprintf(os.Stderr, "%-8s|%5d|\n", "name", 42)
//	n := cbprintf.Snprintf(buf[:], "%#x", 255) // buf[:min(n, len(buf))] == "0xff"
//
// Fixed-capacity sinks live next to the engine: Buffer (snprintf
// semantics), Ring (overwrite-oldest log ring) and WriterSink (staged
// io.Writer output). The printk subpackage builds a levelled console logger
// on top of the engine.
package cbprintf
