// Package recent stores the directory jay was called from on its last
// successful jump, which is where "jay -" and a bare "jay" return to.
package recent

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/hernantz/jay/internal/core/logger"
	"github.com/hernantz/jay/internal/filemanager"
)

// Pointer reads and writes the single-line recent directory file
type Pointer struct {
	path   string
	getwd  func() (string, error)
	files  *filemanager.Manager[string]
	logger logger.Logger
}

// Option configures a Pointer
type Option func(*Pointer)

// WithGetwd replaces os.Getwd
func WithGetwd(getwd func() (string, error)) Option {
	return func(p *Pointer) {
		p.getwd = getwd
	}
}

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option {
	return func(p *Pointer) {
		p.logger = l
	}
}

// New returns a Pointer backed by the file at path
func New(path string, opts ...Option) *Pointer {
	p := &Pointer{
		path:   path,
		getwd:  os.Getwd,
		files:  filemanager.NewManager[string](lineCodec{}),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the recorded directory, or "" when there is none. A missing,
// empty or unreadable file all mean there is none.
func (p *Pointer) Get(ctx context.Context) string {
	dir, err := p.files.Read(ctx, p.path)
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Debug("ignoring unreadable recent file", "path", p.path, "error", err)
		}
		return ""
	}
	return dir
}

// Set records the current working directory
func (p *Pointer) Set(ctx context.Context) error {
	cwd, err := p.getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if err := p.files.Write(ctx, p.path, cwd); err != nil {
		return fmt.Errorf("failed to write recent directory: %w", err)
	}
	return nil
}

// lineCodec stores one line without a trailing newline and reads back the first line
type lineCodec struct{}

func (lineCodec) Marshal(dir string) ([]byte, error) {
	return []byte(dir), nil
}

func (lineCodec) Unmarshal(data []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return "", sc.Err()
	}
	return sc.Text(), nil
}
