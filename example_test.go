package cbprintf_test

import (
	"os"

	"pkt.systems/cbprintf"
)

func ExampleFormatter_Format() {
	f := cbprintf.New(cbprintf.Options{Profile: cbprintf.ProfileReduced, Count: true})
	out := cbprintf.NewWriterSink(os.Stdout)
	args := cbprintf.NewList(cbprintf.Str("RAX"), cbprintf.Uint(0xdeadbeef), cbprintf.Int(1<<40))
	n := f.Format(out, "%s: 0x%08x %lld\n", args)
	_ = out.Flush()
	_, _ = cbprintf.Fprintf(os.Stdout, "%d\n", n)
	// Output:
	// RAX: 0xdeadbeef ERR
	// 20
}

func ExampleSnprintf() {
	var buf [4]byte
	n := cbprintf.Snprintf(buf[:], "%#x", 0xabcdef)
	_, _ = cbprintf.Fprintf(os.Stdout, "%s %d\n", buf[:min(n, len(buf))], n)
	// Output:
	// 0xab 8
}

func ExampleRing() {
	var storage [12]byte
	ring := cbprintf.NewRing(storage[:])
	for i := range 5 {
		cbprintf.Printf(ring, "<%d>", i)
	}
	_, _ = ring.WriteTo(os.Stdout)
	_, _ = cbprintf.Fprintf(os.Stdout, "\n%llu dropped\n", ring.Dropped())
	// Output:
	// <1><2><3><4>
	// 3 dropped
}
