package filemanager

import "github.com/gofrs/flock"

// newLock returns a lock on a sibling file. Locking the data file itself would
// not survive the rename that replaces it.
func newLock(path string) *flock.Flock {
	return flock.New(lockPath(path))
}

func lockPath(path string) string {
	return path + ".lock"
}
