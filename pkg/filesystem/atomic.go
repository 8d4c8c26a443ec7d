// Package filesystem provides filesystem utilities for the command line
// interface, in particular atomic output file writing.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// atomicWriteTemporaryNamePrefix is the file name prefix to use for
// intermediate temporary files used in atomic writes.
const atomicWriteTemporaryNamePrefix = ".ups-atomic-write"

// WriteFileAtomic writes a file to disk in an atomic fashion by using an
// intermediate temporary file that is swapped in place using a rename
// operation. The temporary file is created in the destination's directory so
// that the rename never crosses a filesystem boundary.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode) error {
	// Create the temporary file. The os package already uses secure
	// permissions for creating temporary files, so we don't need to change
	// them until the write is complete.
	temporary, err := os.CreateTemp(filepath.Dir(path), atomicWriteTemporaryNamePrefix)
	if err != nil {
		return errors.Wrap(err, "unable to create temporary file")
	}

	// Write data.
	if _, err = temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporary.Name())
		return errors.Wrap(err, "unable to write data to temporary file")
	}

	// Close out the file.
	if err = temporary.Close(); err != nil {
		os.Remove(temporary.Name())
		return errors.Wrap(err, "unable to close temporary file")
	}

	// Set the file's permissions.
	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		os.Remove(temporary.Name())
		return errors.Wrap(err, "unable to change file permissions")
	}

	// Rename the file into place.
	if err = os.Rename(temporary.Name(), path); err != nil {
		os.Remove(temporary.Name())
		return errors.Wrap(err, "unable to rename file")
	}

	// Success.
	return nil
}
