package format

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// DefaultSeparator is put between two items of console output.
const DefaultSeparator = ", "

// ErrIllegalArgument is returned for nil writers.
var ErrIllegalArgument = errors.New("format: illegal argument")

// Highlighter reports how many leading bytes of an item should be emphasized.
// A return value of 0 leaves the item plain.
type Highlighter func(item string) int

// HighlightRunes returns a Highlighter for the first n runes of every item.
// This is the usual choice for prefix matches, where the prefix length is
// known in runes.
func HighlightRunes(n int) Highlighter {
	return func(item string) int {
		pos := 0
		for i := 0; i < n && pos < len(item); i++ {
			_, size := utf8.DecodeRuneInString(item[pos:])
			pos += size
		}
		return pos
	}
}

// Console is a type for outputting a list of items to a console with a fixed
// width font. Items are joined by a separator and wrapped into lines.
type Console struct {
	Separator string       // defaults to DefaultSeparator
	Highlight *color.Color // color for highlighted prefixes, nil for plain output
}

// NewConsole creates a console formatter. If highlight is nil, a default color
// will be used.
func NewConsole(highlight *color.Color) *Console {
	if highlight == nil {
		highlight = color.New(color.FgBlue, color.Bold)
	}
	return &Console{
		Separator: DefaultSeparator,
		Highlight: highlight,
	}
}

// Print outputs items to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func (con *Console) Print(items []string, hl Highlighter, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return con.Write(os.Stdout, items, hl, config)
}

// Write outputs items to w, wrapped to config.LineWidth. hl may be nil.
func (con *Console) Write(w io.Writer, items []string, hl Highlighter, config *Config) error {
	if w == nil {
		return ErrIllegalArgument
	}
	config = config.normalized()
	sep := con.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	out := bufio.NewWriter(w)
	lines := firstFit(items, sep, config.LineWidth, config.Context)
	tracer().Debugf("formatting %d items into %d lines", len(items), len(lines))
	i := 0
	for _, count := range lines {
		for j := 0; j < count; j++ {
			con.item(out, items[i], hl)
			i++
			if i == len(items) {
				break
			}
			if j == count-1 { // no trailing blanks at end of line
				out.WriteString(strings.TrimRight(sep, " "))
			} else {
				out.WriteString(sep)
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

func (con *Console) item(w io.Writer, item string, hl Highlighter) {
	n := 0
	if hl != nil && con.Highlight != nil {
		n = min(max(hl(item), 0), len(item))
	}
	if n == 0 {
		io.WriteString(w, item)
		return
	}
	con.Highlight.Fprint(w, item[:n])
	io.WriteString(w, item[n:])
}
