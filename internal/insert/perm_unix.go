//go:build unix

package insert

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// newFileMode is the mode os.Create gives a new file under the current umask.
func newFileMode() fs.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return fs.FileMode(0o666 &^ mask)
}
