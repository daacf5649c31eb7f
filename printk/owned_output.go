package printk

import (
	"io"
	"os"
	"sync"
)

// ownedCloser marks outputs printk opened itself and may therefore close.
type ownedCloser interface {
	printkOwnedClose() error
}

type ownedOutput struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func newOwnedOutput(writer io.Writer, closer io.Closer) io.Writer {
	if writer == nil {
		writer = io.Discard
	}
	if closer == nil {
		return writer
	}
	if existing, ok := writer.(*ownedOutput); ok {
		return existing
	}
	return &ownedOutput{writer: writer, closer: closer}
}

func (o *ownedOutput) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

func (o *ownedOutput) Close() error {
	return o.printkOwnedClose()
}

func (o *ownedOutput) printkOwnedClose() error {
	o.once.Do(func() {
		o.closeErr = o.closer.Close()
	})
	return o.closeErr
}

func closeOutput(w io.Writer) error {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return nil
	}
	if c, ok := w.(ownedCloser); ok {
		return c.printkOwnedClose()
	}
	return nil
}

// teeWriter copies every line to all writers, stopping at the first failure.
type teeWriter struct {
	writers []io.Writer
}

func newTeeWriter(writers ...io.Writer) io.Writer {
	return &teeWriter{writers: writers}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	for _, w := range t.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}
