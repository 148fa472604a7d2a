package insert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// CopyFile writes srcPath to dstPath with the marker inserted. The source is
// opened first so a bad source never touches the destination. Copying a file
// onto itself always takes the buffered path.
func CopyFile(srcPath, dstPath string, mode Mode, opts Options) (Result, error) {
	src, srcInfo, err := openSource(srcPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	if dstInfo, err := os.Stat(dstPath); err == nil && os.SameFile(srcInfo, dstInfo) {
		mode = ModeBuffered
	}

	switch mode {
	case ModeBuffered:
		return copyBuffered(src, dstPath, opts)
	case ModeStream, "":
		return copyStream(src, dstPath, opts)
	default:
		return Result{}, fmt.Errorf("unknown mode %q", mode)
	}
}

func openSource(path string) (*os.File, fs.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, sourceError(err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, sourceError(err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, sourceError(&fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")})
	}
	return f, info, nil
}

func copyStream(src io.Reader, dstPath string, opts Options) (res Result, err error) {
	dst, err := os.Create(dstPath)
	if err != nil {
		return Result{}, destinationError(err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = destinationError(cerr)
		}
	}()
	return Stream(dst, src, opts)
}

// copyBuffered replaces dstPath atomically, so a failed write leaves any
// previous destination in place.
func copyBuffered(src io.Reader, dstPath string, opts Options) (Result, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return Result{}, sourceError(err)
	}
	out, res := render(data, opts)

	// Replace the link target, not the link, as os.Create would.
	target := dstPath
	if resolved, err := filepath.EvalSymlinks(dstPath); err == nil {
		target = resolved
	}
	_, statErr := os.Stat(target)
	existed := statErr == nil

	if err := atomic.WriteFile(target, bytes.NewReader(out)); err != nil {
		return res, destinationError(err)
	}
	if !existed {
		// atomic creates its temp file 0600; match what os.Create would give.
		if err := os.Chmod(target, newFileMode()); err != nil {
			return res, destinationError(err)
		}
	}
	return res, nil
}
