package colour

import (
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Writer wraps an io.Writer, rendering mIRC control codes as ANSI escapes
// when the underlying writer is a terminal and stripping them otherwise.
// Tag expansion (ExpandTags) is the caller's responsibility — Writer only
// handles the final mIRC-to-terminal/strip step.
type Writer struct {
	out      io.Writer
	terminal bool
}

// NewWriter detects whether w is an interactive terminal (including the
// Cygwin/MSYS case on Windows) and wraps it accordingly. Non-*os.File
// writers are always treated as non-terminal and get the Strip path.
func NewWriter(w io.Writer) *Writer {
	f, ok := w.(*os.File)
	if !ok {
		return &Writer{out: w, terminal: false}
	}

	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &Writer{out: colorable.NewColorable(f), terminal: true}
	}

	return &Writer{out: w, terminal: false}
}

func (w *Writer) Write(p []byte) (int, error) {
	var out string
	if w.terminal {
		out = ToTerminal(string(p))
	} else {
		out = Strip(string(p))
	}

	if _, err := io.WriteString(w.out, out); err != nil {
		return 0, err
	}
	return len(p), nil
}
