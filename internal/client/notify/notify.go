// Package notify shows transient success and error messages to the user.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier is the toast sink of the sign-in form.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Writer prints one line per message to an io.Writer.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Notifier = (*Writer)(nil)

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Success(msg string) { n.print("✔", msg) }

func (n *Writer) Error(msg string) { n.print("✖", msg) }

func (n *Writer) print(mark, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s %s\n", mark, msg)
}
