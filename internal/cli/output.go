package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/itsjohncs/addlink/internal/config"
	"github.com/itsjohncs/addlink/internal/insert"
)

var (
	colorError = color.New(color.FgRed, color.Bold)
	colorDone  = color.New(color.FgGreen, color.Bold)
	colorDim   = color.New(color.FgHiBlack)
)

// FormatError renders err for w, colored only when w is a terminal.
func FormatError(w io.Writer, err error) string {
	return paint(w, colorError, "error:") + " " + err.Error()
}

func printSummary(w io.Writer, dst string, cfg config.Config, res insert.Result) {
	const verb = "wrote"
	head := fmt.Sprintf(" %s: %s, ", dst, pluralLines(res.Lines))
	var tail string
	if res.Inserted {
		preview, _, _ := strings.Cut(cfg.Marker, "\n")
		tail = fmt.Sprintf("link after line %d: %s", cfg.AfterLine, preview)
	} else {
		tail = fmt.Sprintf("no link (fewer than %d lines)", cfg.AfterLine)
	}

	if width := writerWidth(w); width > 0 {
		avail := width - runewidth.StringWidth(verb+head)
		if avail < 1 {
			avail = 1
		}
		tail = runewidth.Truncate(tail, avail, "…")
	}

	fmt.Fprintln(w, paint(w, colorDone, verb)+head+paint(w, colorDim, tail))
}

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// paint leaves NO_COLOR and color.NoColor to fatih/color on terminals.
func paint(w io.Writer, c *color.Color, s string) string {
	if !writerIsTerminal(w) {
		return s
	}
	return c.Sprint(s)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func writerWidth(w io.Writer) int {
	if !writerIsTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0
	}
	return width
}
