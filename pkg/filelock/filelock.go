// Package filelock probes whether a document file can be opened exclusively.
//
// The probe runs before any automation host is launched: opening the target
// for exclusive read-write access and immediately releasing it proves no
// other process currently holds the file open. The probe is best-effort; a
// racing open between probe and host launch is still possible and is
// reported by the host layer instead.
package filelock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// Probe attempts to open path for exclusive read-write access and releases it
// immediately. It returns [vbaerrors.ErrFileLocked] if another process holds
// the file open, and [vbaerrors.ErrFileNotFound] if the file does not exist.
// No retry is performed; the lock holder is an external, uncontrolled
// process.
func Probe(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", vbaerrors.ErrFileNotFound, path)
		}

		return fmt.Errorf("stat %q: %w", path, err)
	}

	err := probeExclusive(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", vbaerrors.ErrFileLocked, path, err)
	}

	return nil
}
