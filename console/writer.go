package console

import (
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

const ansiReset = "\x1b[0m"

// WriterConfig controls a Writer console.
type WriterConfig struct {
	// Output receives the rendered lines. Defaults to os.Stderr.
	Output io.Writer

	// NoColor disables ANSI escapes.
	NoColor bool
}

// Writer renders lines to an io.Writer.
type Writer struct {
	out     io.Writer
	noColor bool
}

var _ Console = (*Writer)(nil)

// NewWriter creates a Writer console.
func NewWriter(cfg WriterConfig) *Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Writer{out: out, noColor: cfg.NoColor}
}

// Print writes the line followed by a newline. Write errors are ignored.
func (w *Writer) Print(line Line) {
	prefix := ""
	if !w.noColor {
		prefix = ansi(line.Style)
	}
	if prefix == "" {
		_, _ = fmt.Fprintln(w.out, line.Text)
		return
	}
	_, _ = fmt.Fprint(w.out, prefix, line.Text, ansiReset, "\n")
}

// ansi converts the colours of s into 24-bit escape sequences.
// Unparsable colours are skipped.
func ansi(s Style) string {
	seq := ""
	if c, ok := parseHex(s.Color); ok {
		r, g, b := c.RGB255()
		seq += fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	if c, ok := parseHex(s.Background); ok {
		r, g, b := c.RGB255()
		seq += fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return seq
}

// parseHex accepts only the #rgb and #rrggbb forms; colorful.Hex alone
// would read partial values such as "#00000".
func parseHex(s string) (colorful.Color, bool) {
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
