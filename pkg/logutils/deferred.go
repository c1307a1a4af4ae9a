package logutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Deferred holds log output in memory while a full-screen program owns the
// terminal. Safe for concurrent use.
type Deferred struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Logger returns a copy of base that writes to d.
func (d *Deferred) Logger(base zerolog.Logger) zerolog.Logger {
	return base.Output(d)
}

// Flush writes everything buffered so far to w and resets the buffer.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.buf.WriteTo(w)
	return err
}
