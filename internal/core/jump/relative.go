package jump

import (
	"os"
	"path/filepath"
)

// grandparent is what "..." expands to
var grandparent = filepath.Join("..", "..")

// RelativeOfCwd resolves term against cwd and reports whether the result is an
// existing directory. "." is cwd itself, ".." its parent and "..." its
// grandparent. An absolute term is taken as is.
//
// Existence is checked on the unnormalized path, so ".." out of a directory
// that no longer exists fails even if the parent is still there.
func RelativeOfCwd(cwd, term string) (string, bool) {
	if term == "..." {
		term = grandparent
	}

	candidate := term
	if !filepath.IsAbs(term) {
		candidate = cwd + string(filepath.Separator) + term
	}
	if !isDir(candidate) {
		return "", false
	}

	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", false
	}
	return abs, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
