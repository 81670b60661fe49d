// Package index keeps the frecency index: the directories jay has jumped to,
// keyed by absolute path, with the time each one was last visited.
//
// The index lives in a small CSV file with one `path,timestamp` record per line
// and no header. It is loaded once per invocation, mutated in memory, and
// rewritten in full after every change. Only the most recently visited entries
// are written back, so the file never grows past the configured size.
package index

import (
	"context"
	"sort"
	"time"

	"github.com/hernantz/jay/internal/core/logger"
	"github.com/hernantz/jay/internal/filemanager"
	"github.com/hernantz/jay/internal/fuzzy"
)

// DefaultMaxSize is the number of entries kept when persisting
const DefaultMaxSize = 100

// Entry is one indexed directory
type Entry struct {
	Path string
	// LastAccess is the unix time of the last visit, in seconds
	LastAccess float64
}

// Index is the in-memory view of the index file
type Index struct {
	path      string
	entries   map[string]float64
	maxSize   int
	threshold int
	now       func() time.Time
	files     *filemanager.Manager[[]Entry]
	logger    logger.Logger
}

// Option configures an Index
type Option func(*Index)

// WithMaxSize caps the number of persisted entries
func WithMaxSize(n int) Option {
	return func(i *Index) {
		if n > 0 {
			i.maxSize = n
		}
	}
}

// WithThreshold sets the minimum score FuzzyFind accepts (exclusive)
func WithThreshold(n int) Option {
	return func(i *Index) {
		i.threshold = n
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(i *Index) {
		i.now = now
	}
}

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option {
	return func(i *Index) {
		i.logger = l
	}
}

// Open loads the index at path, creating an empty file if there is none.
// An unreadable or malformed file yields an *IOError.
func Open(ctx context.Context, path string, opts ...Option) (*Index, error) {
	idx := &Index{
		path:      path,
		entries:   make(map[string]float64),
		maxSize:   DefaultMaxSize,
		threshold: fuzzy.DefaultThreshold,
		now:       time.Now,
		files:     filemanager.NewManager[[]Entry](csvCodec{}),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	idx.logger = idx.logger.With("index", path)

	if err := idx.files.Touch(ctx, path); err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}

	rows, err := idx.files.Read(ctx, path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	for _, e := range rows {
		idx.entries[e.Path] = e.LastAccess
	}

	idx.logger.Debug("index loaded", "entries", len(idx.entries))
	return idx, nil
}

// Path returns the backing file
func (i *Index) Path() string {
	return i.path
}

// Len returns the number of entries held in memory
func (i *Index) Len() int {
	return len(i.entries)
}

// Get returns the entry for path
func (i *Index) Get(path string) (Entry, bool) {
	ts, ok := i.entries[path]
	if !ok {
		return Entry{}, false
	}
	return Entry{Path: path, LastAccess: ts}, true
}

// Entries returns every entry, most recently visited first
func (i *Index) Entries() []Entry {
	out := make([]Entry, 0, len(i.entries))
	for p, ts := range i.entries {
		out = append(out, Entry{Path: p, LastAccess: ts})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].LastAccess != out[b].LastAccess {
			return out[a].LastAccess > out[b].LastAccess
		}
		return out[a].Path < out[b].Path
	})
	return out
}

// FuzzyFind returns the indexed path that best matches term. Candidates are
// considered in path order, so the alphabetically first path wins a tie.
func (i *Index) FuzzyFind(term string) (string, bool) {
	if len(i.entries) == 0 {
		return "", false
	}

	paths := make([]string, 0, len(i.entries))
	for p := range i.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	m, ok := fuzzy.ExtractOne(term, paths, i.threshold)
	if !ok {
		i.logger.Debug("no index match", "term", term)
		return "", false
	}
	i.logger.Debug("index match", "term", term, "path", m.Str, "score", m.Score)
	return m.Str, true
}

// Update stamps path with the current time and persists the index
func (i *Index) Update(ctx context.Context, path string) error {
	i.entries[path] = unixSeconds(i.now())
	return i.Persist(ctx)
}

// Delete drops path, if present, and persists the index
func (i *Index) Delete(ctx context.Context, path string) error {
	delete(i.entries, path)
	return i.Persist(ctx)
}

// Prune drops every entry for which exists reports false, persists the index
// and returns the removed paths.
func (i *Index) Prune(ctx context.Context, exists func(path string) bool) ([]string, error) {
	var removed []string
	for p := range i.entries {
		if !exists(p) {
			removed = append(removed, p)
		}
	}
	sort.Strings(removed)

	for _, p := range removed {
		delete(i.entries, p)
	}
	if err := i.Persist(ctx); err != nil {
		return nil, err
	}
	return removed, nil
}

// Persist writes the most recent entries, up to the size cap, to the index file
func (i *Index) Persist(ctx context.Context) error {
	rows := i.Entries()
	if len(rows) > i.maxSize {
		i.logger.Debug("evicting entries", "dropped", len(rows)-i.maxSize)
		rows = rows[:i.maxSize]
	}

	if err := i.files.Write(ctx, i.path, rows); err != nil {
		return &IOError{Op: "write", Path: i.path, Err: err}
	}
	return nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
