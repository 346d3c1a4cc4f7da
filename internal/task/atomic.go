package task

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/rabench/internal/rberrors"
)

// WriteAtomic writes data to path by first writing a per-process-PID temp
// file alongside it and renaming over the final name (spec section 6:
// "write to ~<filename>.<pid> then rename"). If path already exists and
// force is false, the write is skipped and WriteAtomic returns nil
// without touching the file.
func WriteAtomic(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %q: %v: %w", path, err, rberrors.ErrIOFailure)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %q: %v: %w", path, err, rberrors.ErrIOFailure)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf("~%s.%d", filepath.Base(path), os.Getpid()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file for %q: %v: %w", path, err, rberrors.ErrIOFailure)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming temp file into %q: %v: %w", path, err, rberrors.ErrIOFailure)
	}

	return nil
}
