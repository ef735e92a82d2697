// Package reporter renders a Profile into a single "User details" line.
//
// Two renderings are supported:
//
//	text: User details: {name: Nerd, age: 30, location: Earth, skills: [HTML, CSS]}
//	json: User details: {"name":"Nerd","age":30,"location":"Earth","skills":["HTML","CSS"]}
//
// Both list every field in insertion order: name, age, then each
// attribute in the order it was given. Absent attributes leave no trace.
package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/onboard/internal/types"
)

// Format selects how a profile is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Prefix starts every report line.
const Prefix = "User details: "

// ParseFormat accepts "text" or "json". The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q: want %q or %q", s, FormatText, FormatJSON)
	}
}

// Render returns the text rendering of p.
func Render(p types.Profile) string {
	var b strings.Builder

	b.WriteByte('{')
	for i, f := range p.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Key)
		b.WriteString(": ")
		writeText(&b, f.Value)
	}
	b.WriteByte('}')

	return b.String()
}

func writeText(b *strings.Builder, v any) {
	switch v := v.(type) {
	case string:
		b.WriteString(v)
	case int:
		b.WriteString(strconv.Itoa(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case []string:
		b.WriteByte('[')
		b.WriteString(strings.Join(v, ", "))
		b.WriteByte(']')
	default:
		fmt.Fprint(b, v)
	}
}

// RenderJSON returns p as one JSON object whose keys keep insertion order.
// encoding/json sorts map keys, so the object is assembled field by field.
func RenderJSON(p types.Profile) (string, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, f := range p.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Key)
		if err != nil {
			return "", fmt.Errorf("reporter.RenderJSON: key %q: %w", f.Key, err)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return "", fmt.Errorf("reporter.RenderJSON: value of %q: %w", f.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.String(), nil
}

// Reporter writes profile reports to an output stream.
type Reporter struct {
	out    io.Writer
	format Format
}

// New returns a Reporter writing to out in the given format.
// An unknown format falls back to text.
func New(out io.Writer, format Format) *Reporter {
	if format != FormatJSON {
		format = FormatText
	}
	return &Reporter{out: out, format: format}
}

// Format reports the rendering this Reporter uses.
func (r *Reporter) Format() Format { return r.format }

// Report writes one line: "User details: " followed by the rendering of p.
func (r *Reporter) Report(p types.Profile) error {
	body := Render(p)
	if r.format == FormatJSON {
		var err error
		if body, err = RenderJSON(p); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.out, Prefix+body); err != nil {
		return fmt.Errorf("reporter.Report: %w", err)
	}
	return nil
}
