package greeter

import (
	"bytes"
	"errors"
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Developer", "Welcome, Developer!"},
		{"", "Welcome, !"},
		{"  spaced  ", "Welcome,   spaced  !"},
		{"Ада", "Welcome, Ада!"},
	}
	for _, tt := range tests {
		if got := Message(tt.name); got != tt.want {
			t.Errorf("Message(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGreet_WritesExactlyOneLine(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)

	if err := g.Greet("Developer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Welcome, Developer!\n" {
		t.Errorf("output = %q, want %q", got, "Welcome, Developer!\n")
	}
}

func TestGreet_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)

	for i := 0; i < 2; i++ {
		if err := g.Greet("Nerd"); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
	want := "Welcome, Nerd!\nWelcome, Nerd!\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestGreet_SurfacesWriteError(t *testing.T) {
	sentinel := errors.New("disk full")
	err := New(failingWriter{err: sentinel}).Greet("Developer")
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want it to wrap %v", err, sentinel)
	}
}
