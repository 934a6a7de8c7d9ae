package console

import (
	"strings"

	"github.com/tarmac-project/weblog/level"
)

// Style describes how a console line is presented.
type Style struct {
	Color      string
	FontSize   string
	Background string
	Padding    string
}

// DefaultColor is used for lines whose level is not an entry level.
// It is deliberately not a valid hex colour, so Writer leaves such lines uncoloured.
const DefaultColor = "#00000"

// HeaderStyle is applied to the line that introduces a logger's entries.
var HeaderStyle = Style{FontSize: "20px"}

var levelColors = map[level.Level]string{
	level.Error:   "#E02200",
	level.Warning: "#EAC806",
	level.Info:    "#159F33",
	level.Debug:   "#15489F",
	level.Trace:   "#620DC2",
}

// StyleFor returns the presentation of an entry of level l.
func StyleFor(l level.Level) Style {
	color, ok := levelColors[l]
	if !ok {
		color = DefaultColor
	}
	return Style{
		Color:      color,
		FontSize:   "15px",
		Background: "#000",
		Padding:    "5px",
	}
}

// String returns the style as a CSS declaration list. Empty fields are omitted.
func (s Style) String() string {
	decls := make([]string, 0, 4)
	for _, d := range [...]struct{ prop, val string }{
		{"color", s.Color},
		{"font-size", s.FontSize},
		{"background-color", s.Background},
		{"padding", s.Padding},
	} {
		if d.val != "" {
			decls = append(decls, d.prop+":"+d.val)
		}
	}
	return strings.Join(decls, ";")
}
