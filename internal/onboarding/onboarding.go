// Package onboarding runs the developer-onboarding session: the same
// handful of lines every new student prints on day one.
//
// SESSION SEQUENCE:
//  1. Banner line
//  2. "Current date: <date>"
//  3. "User agent: <client id>"
//  4. "Welcome, <name>!"
//  5. "User details: {...}"
//
// Host values come from an injected hostctx.Provider and everything is
// written to one output stream, top to bottom, once.
package onboarding

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/aanand-mishra/onboard/internal/greeter"
	"github.com/aanand-mishra/onboard/internal/hostctx"
	"github.com/aanand-mishra/onboard/internal/reporter"
	"github.com/aanand-mishra/onboard/internal/types"
)

// DefaultBanner is printed when no banner is configured.
const DefaultBanner = "Hello from NERD Dev Onboarding!"

// Session wires the greeter and the reporter to one output stream.
type Session struct {
	out      io.Writer
	host     hostctx.Provider
	greeter  *greeter.Greeter
	reporter *reporter.Reporter
	banner   lipgloss.Style
	text     string
	log      *slog.Logger
}

// Options tune a Session. The zero value is usable.
type Options struct {
	Banner string
	Format reporter.Format
	Logger *slog.Logger
}

// New returns a Session writing to out. The banner is rendered bold when
// out is a color terminal and left plain otherwise.
func New(out io.Writer, host hostctx.Provider, opts Options) *Session {
	text := opts.Banner
	if text == "" {
		text = DefaultBanner
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Session{
		out:      out,
		host:     host,
		greeter:  greeter.New(out),
		reporter: reporter.New(out, opts.Format),
		banner:   lipgloss.NewRenderer(out).NewStyle().Bold(true),
		text:     text,
		log:      log,
	}
}

// Run prints the whole session for greetName and p.
func (s *Session) Run(greetName string, p types.Profile) error {
	log := s.log.With(slog.String("run_id", uuid.NewString()))
	log.Info("onboarding session started")

	if _, err := fmt.Fprintln(s.out, s.banner.Render(s.text)); err != nil {
		return fmt.Errorf("onboarding.Run: banner: %w", err)
	}
	if _, err := fmt.Fprintln(s.out, "Current date:", s.host.Date()); err != nil {
		return fmt.Errorf("onboarding.Run: date: %w", err)
	}
	if _, err := fmt.Fprintln(s.out, "User agent:", s.host.ClientID()); err != nil {
		return fmt.Errorf("onboarding.Run: client id: %w", err)
	}

	if err := s.Greet(greetName); err != nil {
		return err
	}
	if err := s.Report(p); err != nil {
		return err
	}

	log.Info("onboarding session finished",
		slog.String("profile", p.Name),
		slog.Int("attributes", len(p.Attributes)))
	return nil
}

// Greet prints only the welcome line.
func (s *Session) Greet(name string) error {
	s.log.Debug("greeting", slog.String("name", name))
	return s.greeter.Greet(name)
}

// Report prints only the profile report.
func (s *Session) Report(p types.Profile) error {
	s.log.Debug("reporting profile",
		slog.String("name", p.Name),
		slog.String("format", string(s.reporter.Format())))
	return s.reporter.Report(p)
}
