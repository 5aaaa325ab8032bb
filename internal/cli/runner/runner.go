// Package runner owns the process-boundary file handling the core engine
// deliberately excludes: reading a source file whole into memory and
// replacing it through a scoped temporary file plus atomic rename, so an
// interrupted process never leaves a partially-written file behind.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrReadFailed indicates a failure to read a source file.
	ErrReadFailed = errors.New("failed to read file")

	// ErrWriteFailed indicates a failure to write or atomically replace a
	// file. The original file is left untouched when this is returned.
	ErrWriteFailed = errors.New("failed to replace file")
)

// ReadFile reads the entire file into memory. The engine operates on fully
// buffered input, so there is no streaming variant.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}
	return data, nil
}

// ReplaceFile atomically replaces the file at path with data, preserving
// the original file mode. The data is written to a temporary file in the
// same directory and renamed over the target, so readers observe either the
// old content or the new, never a mix.
func ReplaceFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	return nil
}
