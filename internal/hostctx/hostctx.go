// Package hostctx supplies the ambient host values the onboarding session
// prints: today's date and an identifier for the client running it.
//
// The session never reads the clock or the runtime itself; it asks a
// Provider. Tests pass a Static provider and get byte-for-byte stable
// output.
package hostctx

import (
	"fmt"
	"runtime"
	"time"
)

// DefaultDateLayout is the en-US short date ("10/15/2026").
const DefaultDateLayout = "1/2/2006"

// Provider hands out opaque, host-defined text.
type Provider interface {
	Date() string
	ClientID() string
}

// Host reads the values from the running process.
type Host struct {
	now      func() time.Time
	layout   string
	clientID string
}

// Option configures a Host.
type Option func(*Host)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Host) { h.now = now }
}

// WithDateLayout sets the time.Format layout used by Date.
// An empty layout keeps DefaultDateLayout.
func WithDateLayout(layout string) Option {
	return func(h *Host) {
		if layout != "" {
			h.layout = layout
		}
	}
}

// WithClientID fixes the client identifier. An empty id keeps the one
// derived from the Go runtime.
func WithClientID(id string) Option {
	return func(h *Host) {
		if id != "" {
			h.clientID = id
		}
	}
}

// NewHost returns a Host with the given options applied.
func NewHost(opts ...Option) *Host {
	h := &Host{
		now:      time.Now,
		layout:   DefaultDateLayout,
		clientID: RuntimeClientID(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Date() string { return h.now().Format(h.layout) }

func (h *Host) ClientID() string { return h.clientID }

// RuntimeClientID describes this process the way a browser user agent
// describes a browser, e.g. "Go/go1.24.0 (linux; amd64)".
func RuntimeClientID() string {
	return fmt.Sprintf("Go/%s (%s; %s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Static returns fixed values.
type Static struct {
	DateText string
	Client   string
}

func (s Static) Date() string { return s.DateText }

func (s Static) ClientID() string { return s.Client }
