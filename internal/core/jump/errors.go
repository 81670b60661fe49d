package jump

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no strategy resolves the tokens
var ErrNotFound = errors.New("no matching directory")

// StaleDirectoryError is returned when the resolved directory no longer
// exists. Its index entry has already been removed.
type StaleDirectoryError struct {
	Path string
}

func (e *StaleDirectoryError) Error() string {
	return fmt.Sprintf("directory %s not found", e.Path)
}
