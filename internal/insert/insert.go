package insert

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMarker is the block emitted after the configured line.
const DefaultMarker = "For a nicely formatted version of this README, go to " +
	"https://github.com/itsjohncs/GrassyKnight#grassy-knight\n\n"

// DefaultAfter is the number of source lines copied before the marker.
const DefaultAfter = 3

var (
	// ErrSourceUnreadable indicates the source could not be opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrDestinationUnwritable indicates the destination could not be opened or written.
	ErrDestinationUnwritable = errors.New("destination unwritable")
)

// Options controls where and what is inserted. Zero values select defaults.
type Options struct {
	After  int
	Marker string
}

func (o Options) withDefaults() Options {
	if o.After <= 0 {
		o.After = DefaultAfter
	}
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	return o
}

// Result describes a completed copy.
type Result struct {
	Lines    int
	Inserted bool
}

// Mode selects how a file is copied.
type Mode string

const (
	ModeStream   Mode = "stream"
	ModeBuffered Mode = "buffered"
)

// ParseMode maps a user-supplied name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStream:
		return ModeStream, nil
	case ModeBuffered:
		return ModeBuffered, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want stream or buffered)", s)
	}
}

// Stream copies src to dst line by line, writing the marker as soon as
// opts.After lines have been copied.
func Stream(dst io.Writer, src io.Reader, opts Options) (Result, error) {
	opts = opts.withDefaults()
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)

	var res Result
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := w.Write(line); werr != nil {
				return res, destinationError(werr)
			}
			res.Lines++
			if res.Lines == opts.After {
				if _, werr := w.WriteString(opts.Marker); werr != nil {
					return res, destinationError(werr)
				}
				res.Inserted = true
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, sourceError(err)
		}
	}

	if err := w.Flush(); err != nil {
		return res, destinationError(err)
	}
	return res, nil
}

// Buffered reads all of src before writing anything to dst.
func Buffered(dst io.Writer, src io.Reader, opts Options) (Result, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return Result{}, sourceError(err)
	}
	out, res := render(data, opts)
	if _, err := dst.Write(out); err != nil {
		return res, destinationError(err)
	}
	return res, nil
}

// render builds the full output for data in memory.
func render(data []byte, opts Options) ([]byte, Result) {
	opts = opts.withDefaults()
	lines := splitLines(data)

	var res Result
	var buf bytes.Buffer
	buf.Grow(len(data) + len(opts.Marker))
	for _, line := range lines {
		buf.Write(line)
		res.Lines++
		if res.Lines == opts.After {
			buf.WriteString(opts.Marker)
			res.Inserted = true
		}
	}
	return buf.Bytes(), res
}

// splitLines splits after every newline. A trailing run without a newline is
// its own line; an empty input has no lines.
func splitLines(data []byte) [][]byte {
	lines := bytes.SplitAfter(data, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

func sourceError(err error) error {
	return fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
}

func destinationError(err error) error {
	return fmt.Errorf("%w: %w", ErrDestinationUnwritable, err)
}
