package ui

import (
	"fmt"
	"io"
)

// LineSink writes each emitted line to a writer. The resolver emits the
// directory to jump to, or a diagnostic, through it.
type LineSink struct {
	w io.Writer
}

// NewLineSink returns a sink writing to w
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

// Emit writes line followed by a newline
func (s *LineSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}
