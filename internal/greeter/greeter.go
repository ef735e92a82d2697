// Package greeter renders a display name into a welcome message.
package greeter

import (
	"fmt"
	"io"
)

// Message returns the welcome line for name, without a trailing newline.
// Any text is accepted as-is, including the empty string.
func Message(name string) string {
	return fmt.Sprintf("Welcome, %s!", name)
}

// Greeter writes welcome lines to an output stream.
// It keeps no state between calls.
type Greeter struct {
	out io.Writer
}

// New returns a Greeter writing to out.
func New(out io.Writer) *Greeter {
	return &Greeter{out: out}
}

// Greet writes exactly one line, "Welcome, <name>!". The only error it can
// return is the stream's own write error.
func (g *Greeter) Greet(name string) error {
	if _, err := fmt.Fprintln(g.out, Message(name)); err != nil {
		return fmt.Errorf("greeter.Greet: %w", err)
	}
	return nil
}
