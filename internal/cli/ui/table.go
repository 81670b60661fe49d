package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	"github.com/hernantz/jay/internal/core/index"
)

// NewTable creates a table writing to w with consistent styling
func NewTable(w io.Writer, headers ...any) table.Table {
	tbl := table.New(headers...).WithWriter(w)

	tbl.WithFirstColumnFormatter(func(format string, vals ...any) string {
		return DimStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	// lipgloss.Width ignores ANSI codes when measuring columns
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}

// PrintIndex lists index entries, most recent first
func PrintIndex(w io.Writer, entries []index.Entry, now time.Time) {
	if len(entries) == 0 {
		OutputLine(w, "%s %s", IndexIcon, DimStyle.Render("index is empty"))
		return
	}

	OutputLine(w, "%s %s (%d)", IndexIcon, BoldStyle.Render("Index"), len(entries))
	tbl := NewTable(w, "#", "DIRECTORY", "VISITED")
	for i, e := range entries {
		tbl.AddRow(strconv.Itoa(i+1), e.Path, FormatAge(VisitTime(e), now))
	}
	tbl.Print()
}

// VisitTime converts an entry's timestamp to a time.Time
func VisitTime(e index.Entry) time.Time {
	return time.Unix(0, int64(e.LastAccess*float64(time.Second)))
}
