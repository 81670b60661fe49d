package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hernantz/jay/internal/core/index"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatPretty represents human-readable output format
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents JSON output format
	FormatJSON OutputFormat = "json"
)

// ParseFormat converts a string to OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "pretty", "":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// IndexFormatter renders the index listing
type IndexFormatter interface {
	Index(entries []index.Entry) error
}

// NewIndexFormatter returns the formatter for format, writing to w
func NewIndexFormatter(format OutputFormat, w io.Writer, now func() time.Time) IndexFormatter {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonFormatter{encoder: enc}
	}
	return &prettyFormatter{w: w, now: now}
}

type prettyFormatter struct {
	w   io.Writer
	now func() time.Time
}

func (f *prettyFormatter) Index(entries []index.Entry) error {
	PrintIndex(f.w, entries, f.now())
	return nil
}

type jsonFormatter struct {
	encoder *json.Encoder
}

type indexEntryJSON struct {
	Path       string    `json:"path"`
	LastAccess float64   `json:"last_access"`
	VisitedAt  time.Time `json:"visited_at"`
}

func (f *jsonFormatter) Index(entries []index.Entry) error {
	out := make([]indexEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, indexEntryJSON{
			Path:       e.Path,
			LastAccess: e.LastAccess,
			VisitedAt:  VisitTime(e).UTC(),
		})
	}
	return f.encoder.Encode(out)
}
