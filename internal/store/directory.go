package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PrepareDirectory creates the storage root (and any missing parents) with
// owner-only permissions if it does not exist yet, then checks that it is
// a usable directory.
func PrepareDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
		}
		return fmt.Errorf("%w: create storage directory: %v", ErrIO, err)
	}

	return validateDirectory(dir)
}

// validateDirectory checks that dir exists, is a directory and can be
// listed.
func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s does not exist", ErrNotADirectory, dir)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
	case err != nil:
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	return nil
}
