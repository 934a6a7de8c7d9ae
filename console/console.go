package console

import "github.com/tarmac-project/weblog/level"

// Line is a single rendered console line.
type Line struct {
	// Level is the severity of the entry, or level.Off for lines such as headers.
	Level level.Level
	// Text is the formatted line without styling.
	Text string
	// Style is the requested presentation.
	Style Style
}

// Console accepts formatted lines for display.
type Console interface {
	Print(line Line)
}

// Discard is a Console that drops every line.
type Discard struct{}

// Print implements Console.
func (Discard) Print(Line) {}
