// Package ui provides styling and output helpers for the jay CLI.
//
// Stdout belongs to the shell function that consumes the resolved directory,
// so everything meant for a human goes through an explicit writer, usually
// the command's stderr.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// ErrorStyle is the style for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// SuccessStyle is the style for success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	// WarningStyle is the style for warning messages
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))

	// DimStyle is the style for dimmed text
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// BoldStyle is the style for bold text
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// ErrorIcon prefixes error messages
	ErrorIcon = "❌"

	// SuccessIcon prefixes success messages
	SuccessIcon = "✅"

	// WarningIcon prefixes warnings
	WarningIcon = "⚠️"

	// IndexIcon prefixes the index listing header
	IndexIcon = "📁"
)
