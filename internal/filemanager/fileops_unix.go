//go:build !windows

package filemanager

import "os"

// readFileWithRetry reads path once; sharing violations do not happen here.
func readFileWithRetry(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// atomicRename replaces dst with src. rename(2) is atomic on the same filesystem.
func atomicRename(src, dst string) error {
	return os.Rename(src, dst)
}
