package ui

import (
	"fmt"
	"io"
	"time"
)

// Error prints a styled error line to w
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a styled success line to w
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a styled warning line to w
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints a plain line to w
func OutputLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// FormatDuration formats a duration into a short human-readable string
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "< 1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// FormatAge renders how long ago t was, relative to now
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	diff := now.Sub(t)
	if diff < time.Minute {
		return "just now"
	}
	return FormatDuration(diff) + " ago"
}
