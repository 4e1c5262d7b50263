package console

import (
	"bytes"
	"sync"
)

// Output collects command output between evaluations. It is handed to the
// command environment as its writer and drained by the model after each
// evaluated input.
type Output struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewOutput creates an empty output buffer
func NewOutput() *Output {
	return &Output{}
}

// Write implements io.Writer
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

// Drain returns everything written since the last call and resets the buffer
func (o *Output) Drain() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	s := o.buf.String()
	o.buf.Reset()
	return s
}
