package container

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// checkDestination refuses to write over anything but a regular file, and
// over a regular file unless overwrite is set.
func checkDestination(dest string, overwrite bool) error {
	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}

	if !destFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot write over non-regular file %q: %s", destFileInfo.Name(), destFileInfo.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", destFileInfo.Name())
	}
	return nil
}

// checkSource makes sure src is a regular file.
func checkSource(src string) error {
	srcFileInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot read non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}
	return nil
}
