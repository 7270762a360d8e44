package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic calls write with a temp file next to path, then renames it into
// place, so readers never see a half-written file. Nothing is left behind if
// write fails.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("%w (while creating temp file for %s)", err, path)
	}

	tmp := f.Name()
	defer os.Remove(tmp)

	if err := f.Chmod(0644); err != nil {
		f.Close()
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%w (while writing %s)", err, tmp)
	}

	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w (while renaming %s)", err, tmp)
	}

	return nil
}

// WriteFileAtomic is WriteAtomic for data which is already in memory.
func WriteFileAtomic(path string, data []byte) error {
	return WriteAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
