package printk

import (
	"bytes"
	"errors"
	"io"
	"sync/atomic"
	"testing"
)

type closeTrackingWriter struct {
	closed atomic.Bool
	writes atomic.Int64
}

func (w *closeTrackingWriter) Write(p []byte) (int, error) {
	w.writes.Add(1)
	return len(p), nil
}

func (w *closeTrackingWriter) Close() error {
	w.closed.Store(true)
	return nil
}

func TestObservedWriterPassThrough(t *testing.T) {
	var out bytes.Buffer
	callbackCalled := false

	w := NewObservedWriter(&out, func(WriteFailure) {
		callbackCalled = true
	})

	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if n != len("hello") || out.String() != "hello" {
		t.Fatalf("unexpected pass-through: n=%d out=%q", n, out.String())
	}
	if callbackCalled {
		t.Fatalf("callback should not be called on successful writes")
	}

	stats := w.Stats()
	if stats.Writes != 1 || stats.Bytes != 5 || stats.Failures != 0 || stats.ShortWrites != 0 {
		t.Fatalf("unexpected stats on success: %+v", stats)
	}
}

func TestObservedWriterReportsError(t *testing.T) {
	boom := errors.New("boom")
	var got WriteFailure
	calls := 0

	w := NewObservedWriter(writerFunc(func(p []byte) (int, error) {
		return len(p), boom
	}), func(f WriteFailure) {
		calls++
		got = f
	})

	n, err := w.Write([]byte("abc"))
	if n != 3 || !errors.Is(err, boom) {
		t.Fatalf("unexpected write result %d %v", n, err)
	}
	if calls != 1 || !errors.Is(got.Err, boom) || got.Written != 3 || got.Attempted != 3 {
		t.Fatalf("unexpected callback: calls=%d failure=%+v", calls, got)
	}
	if stats := w.Stats(); stats.Failures != 1 || stats.ShortWrites != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterNormalizesShortWrite(t *testing.T) {
	var got WriteFailure
	w := NewObservedWriter(writerFunc(func(p []byte) (int, error) {
		return len(p) - 1, nil
	}), func(f WriteFailure) {
		got = f
	})

	n, err := w.Write([]byte("abcd"))
	if n != 3 || !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("unexpected write result %d %v", n, err)
	}
	if !errors.Is(got.Err, io.ErrShortWrite) || got.Written != 3 || got.Attempted != 4 {
		t.Fatalf("callback mismatch: %+v", got)
	}
	if stats := w.Stats(); stats.Failures != 1 || stats.ShortWrites != 1 || stats.Bytes != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterCountsLoggerLines(t *testing.T) {
	w := NewObservedWriter(io.Discard, nil)
	logger := NewWithOptions(w, Options{DisableTimestamp: true, NoColor: true})
	logger.Infof("one")
	logger.Infof("two %d", 2)
	if stats := w.Stats(); stats.Writes != 2 || stats.Bytes != uint64(len("<inf> one\n<inf> two 2\n")) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestLoggerCloseDoesNotCloseUserProvidedWriter(t *testing.T) {
	writer := &closeTrackingWriter{}
	logger := NewWithOptions(writer, Options{NoColor: true, DisableTimestamp: true})

	logger.Infof("before_close")
	if err := logger.(*consoleLogger).Close(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if writer.closed.Load() {
		t.Fatalf("expected user-provided writer to stay open")
	}
	logger.Infof("after_close")
	if writer.writes.Load() != 2 {
		t.Fatalf("expected writes to continue after Close, got %d", writer.writes.Load())
	}
}

func TestObservedWriterCloseOwnershipSemantics(t *testing.T) {
	userWriter := &closeTrackingWriter{}
	logger := NewWithOptions(NewObservedWriter(userWriter, nil), Options{NoColor: true, DisableTimestamp: true})
	if err := logger.(*consoleLogger).Close(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if userWriter.closed.Load() {
		t.Fatalf("expected user writer to remain open")
	}

	ownedWriter := &closeTrackingWriter{}
	owned := newOwnedOutput(ownedWriter, ownedWriter)
	ownedLogger := NewWithOptions(NewObservedWriter(owned, nil), Options{NoColor: true, DisableTimestamp: true})
	ownedLogger.Infof("before_owned_close")
	for range 2 {
		if err := ownedLogger.(*consoleLogger).Close(); err != nil {
			t.Fatalf("owned close returned error: %v", err)
		}
	}
	if !ownedWriter.closed.Load() {
		t.Fatalf("expected owned writer to be closed")
	}
}

func TestTeeWriterStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var second bytes.Buffer
	tee := newTeeWriter(writerFunc(func(p []byte) (int, error) { return 0, boom }), &second)
	if _, err := tee.Write([]byte("x")); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if second.Len() != 0 {
		t.Fatalf("second writer should not see data after a failure")
	}
}
