//go:build !unix

package insert

import "io/fs"

func newFileMode() fs.FileMode {
	return 0o666
}
