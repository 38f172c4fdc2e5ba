package format

import (
	"bytes"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/bselect/textfile"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

var names = []string{"Aaron", "Alex", "Alice", "Amanda", "Andrew", "Anna"}

func TestWidth(t *testing.T) {
	if w := Width("Andrew", uax11.LatinContext); w != 6 {
		t.Errorf("expected width of Latin name to be 6, is %d", w)
	}
	if w := Width("日本語", uax11.LatinContext); w != 6 {
		t.Errorf("expected wide characters to take 2 positions each, width is %d", w)
	}
	if w := Width("abc", nil); w != 3 {
		t.Errorf("expected nil context to default to Latin, width is %d", w)
	}
}

func TestFirstFit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bselect")
	defer teardown()
	//
	breaks := firstFit(names, ", ", 20, uax11.LatinContext)
	if !slices.Equal(breaks, []int{3, 3}) {
		t.Errorf("expected 3 items per line, have %v", breaks)
	}
	breaks = firstFit([]string{"Bartholomew", "Al"}, ", ", 5, uax11.LatinContext)
	if !slices.Equal(breaks, []int{1, 1}) {
		t.Errorf("expected overlong word on a line of its own, have %v", breaks)
	}
	if breaks = firstFit(nil, ", ", 20, nil); len(breaks) != 0 {
		t.Errorf("expected no lines for no words, have %v", breaks)
	}
}

func TestConsolePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bselect")
	defer teardown()
	//
	con := &Console{}
	var buf bytes.Buffer
	err := con.Write(&buf, names, HighlightRunes(1), &Config{LineWidth: 20})
	if err != nil {
		t.Fatal(err)
	}
	want := "Aaron, Alex, Alice,\nAmanda, Andrew, Anna\n"
	if buf.String() != want {
		t.Errorf("expected\n%q\nhave\n%q", want, buf.String())
	}
}

func TestConsoleDefaultWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsole(nil).Write(&buf, names, nil, nil); err != nil {
		t.Fatal(err)
	}
	if want := strings.Join(names, ", ") + "\n"; buf.String() != want {
		t.Errorf("expected a single line, have %q", buf.String())
	}
}

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestConsoleHighlight(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false // reset sequences are suppressed while set
	defer func() { color.NoColor = noColor }()
	hl := color.New(color.FgRed)
	hl.EnableColor()
	con := NewConsole(hl)
	var buf bytes.Buffer
	if err := con.Write(&buf, []string{"Ärger", "Anna"}, HighlightRunes(2), nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[31mÄr\x1b[0mger") {
		t.Errorf("expected highlighted prefix, have %q", out)
	}
	if plain := escapes.ReplaceAllString(out, ""); plain != "Ärger, Anna\n" {
		t.Errorf("unexpected text content %q", plain)
	}
}

func TestHighlightRunes(t *testing.T) {
	hl := HighlightRunes(3)
	if n := hl("äöüx"); n != len("äöü") {
		t.Errorf("expected 3 runes to span %d bytes, have %d", len("äöü"), n)
	}
	if n := hl("ab"); n != 2 {
		t.Errorf("expected short item to be highlighted completely, have %d", n)
	}
}

func TestLineWidthFor(t *testing.T) {
	for _, c := range []struct{ term, line int }{
		{120, 110}, {66, 56}, {65, 60}, {31, 26}, {30, 30}, {11, 11}, {10, 10}, {4, 10},
	} {
		if w := lineWidthFor(c.term); w != c.line {
			t.Errorf("terminal width %d: expected line width %d, have %d", c.term, c.line, w)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, "Names", []string{"Anna", "A&B", "Bob"}, HighlightRunes(1))
	if err != nil {
		t.Fatal(err)
	}
	want := `<section class="selection"><h2>Names</h2><ul>` +
		`<li><b>A</b>nna</li><li><b>A</b>&amp;B</li><li><b>B</b>ob</li></ul></section>` + "\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\nhave\n%s", want, buf.String())
	}
	items, err := textfile.ListItems(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(items); !slices.Equal(got, []string{"Anna", "A&B", "Bob"}) {
		t.Errorf("HTML output does not read back, have %q", got)
	}
}

func TestNilWriter(t *testing.T) {
	if err := WriteHTML(nil, "", nil, nil); err != ErrIllegalArgument {
		t.Errorf("expected ErrIllegalArgument, have %v", err)
	}
	if err := NewConsole(nil).Write(nil, nil, nil, nil); err != ErrIllegalArgument {
		t.Errorf("expected ErrIllegalArgument, have %v", err)
	}
}
