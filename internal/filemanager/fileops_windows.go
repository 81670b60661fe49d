//go:build windows

package filemanager

import (
	"errors"
	"os"
	"syscall"
	"time"
)

const (
	errAccessDenied     syscall.Errno = 5
	errSharingViolation syscall.Errno = 32
	errLockViolation    syscall.Errno = 33
	errAlreadyExists    syscall.Errno = 183

	readAttempts = 5
)

// readFileWithRetry reads path, backing off while another process (an editor,
// an antivirus scanner) holds the file open.
func readFileWithRetry(path string) ([]byte, error) {
	var err error
	delay := 10 * time.Millisecond

	for attempt := 0; attempt < readAttempts; attempt++ {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !isFileLocked(err) {
			return nil, err
		}
		time.Sleep(delay)
		delay *= 2
	}

	return nil, err
}

// isFileLocked reports a Windows sharing or lock violation
func isFileLocked(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == errSharingViolation || errno == errLockViolation
}

// atomicRename replaces dst with src. Windows may refuse to rename over a file
// that is open elsewhere; the destination is then removed and the rename retried once.
func atomicRename(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == errAccessDenied || errno == errAlreadyExists) {
		_ = os.Remove(dst)
		time.Sleep(10 * time.Millisecond)
		return os.Rename(src, dst)
	}

	return err
}
