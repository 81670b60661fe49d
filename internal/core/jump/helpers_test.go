package jump

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkdirs creates each relative path under root
func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p), 0o755))
	}
}

// touch creates empty files under root
func touch(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), nil, 0o644))
	}
}

func cwdAt(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

type fakeIndex struct {
	entries map[string]bool
	updated []string
	deleted []string
	err     error
}

func newFakeIndex(paths ...string) *fakeIndex {
	f := &fakeIndex{entries: make(map[string]bool)}
	for _, p := range paths {
		f.entries[p] = true
	}
	return f
}

func (f *fakeIndex) FuzzyFind(term string) (string, bool) {
	paths := make([]string, 0, len(f.entries))
	for p := range f.entries {
		paths = append(paths, p)
	}
	// deterministic enough for single-entry or exact-suffix fixtures
	for _, p := range paths {
		if filepath.Base(p) == term {
			return p, true
		}
	}
	return "", false
}

func (f *fakeIndex) Update(_ context.Context, path string) error {
	if f.err != nil {
		return f.err
	}
	f.entries[path] = true
	f.updated = append(f.updated, path)
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, path string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.entries, path)
	f.deleted = append(f.deleted, path)
	return nil
}

type fakeRecent struct {
	dir   string
	getwd func() (string, error)
	sets  int
}

func (f *fakeRecent) Get(context.Context) string {
	return f.dir
}

func (f *fakeRecent) Set(context.Context) error {
	cwd, err := f.getwd()
	if err != nil {
		return err
	}
	f.dir = cwd
	f.sets++
	return nil
}

type recordingSink struct {
	lines []string
}

func (s *recordingSink) Emit(line string) {
	s.lines = append(s.lines, line)
}
