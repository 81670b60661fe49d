package jump

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hernantz/jay/internal/fuzzy"
)

// Matcher picks the candidate that best matches term
type Matcher func(term string, candidates []string) (string, bool)

// FuzzyMatcher matches with fuzzy.ExtractOne. A candidate must score above
// threshold; ties go to the earliest candidate.
func FuzzyMatcher(threshold int) Matcher {
	return func(term string, candidates []string) (string, bool) {
		m, ok := fuzzy.ExtractOne(term, candidates, threshold)
		if !ok {
			return "", false
		}
		return m.Str, true
	}
}

// ListDirs returns the sorted names of the directories directly under root.
// Symlinks pointing at directories are included; files are not.
func ListDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.IsDir():
			dirs = append(dirs, e.Name())
		case e.Type()&fs.ModeSymlink != 0 && isDir(filepath.Join(root, e.Name())):
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// Walk descends from root one directory per term, in order, picking the child
// directory that best matches each term. When a level has no directories or
// none matches, the walk stops there and returns that directory with a
// trailing separator; the remaining terms are dropped. With every term
// consumed it returns the directory reached, as is.
func Walk(root string, terms []string, match Matcher) string {
	current := root
	for cursor := 0; cursor < len(terms); cursor++ {
		dirs, err := ListDirs(current)
		if err != nil || len(dirs) == 0 {
			return withTrailingSeparator(current)
		}

		name, ok := match(terms[cursor], dirs)
		if !ok {
			return withTrailingSeparator(current)
		}
		current = filepath.Join(current, name)
	}
	return current
}

func withTrailingSeparator(dir string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}
