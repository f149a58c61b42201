// Package fileio reads and writes whole files for the command-line tools.
package fileio

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadAll returns the entire contents of the named file.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// WriteAll replaces the named file with data.  The file is written to a
// temporary name in the same directory first and renamed into place, so a
// failed write never leaves a partial result under path.
func WriteAll(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
