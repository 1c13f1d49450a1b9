package cli

import (
	"fmt"
	"io"
)

// Notifier renders transient operator notices. In the web UI these were
// auto-dismissing toasts; in a scrollback terminal a single tagged line
// serves the same purpose.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Info(msg string) {
	fmt.Fprintf(n.w, "[i] %s\n", msg)
}

func (n *Notifier) Success(msg string) {
	fmt.Fprintf(n.w, "[ok] %s\n", msg)
}

func (n *Notifier) Warning(msg string) {
	fmt.Fprintf(n.w, "[!] %s\n", msg)
}

func (n *Notifier) Error(msg string) {
	fmt.Fprintf(n.w, "[x] %s\n", msg)
}
