/*
Command names selects names by a case-insensitive prefix and prints them in
ascending order.

Usage:

	names [flags]

Without -file or -random, a built-in list of names is used. Files ending in .html or
.htm are read as HTML lists, all others as one name per line.

Flags:

	-prefix string   prefix to select (default "A")
	-file string     read names from this file
	-random n        select from n randomly generated first names
	-html            output an HTML list instead of console text
	-width int       line width for console output (default: from terminal)
	-nocolor         do not highlight the matched prefix
	-trace           trace to the console at debug level
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/bselect"
	"github.com/npillmayer/bselect/btree"
	"github.com/npillmayer/bselect/format"
	"github.com/npillmayer/bselect/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var defaultNames = []string{
	"Alice", "Bob", "Anna", "Alex", "Andrew",
	"Benjamin", "Carol", "David", "Amanda", "Aaron",
}

type options struct {
	prefix  string
	file    string
	random  int
	html    bool
	width   int
	nocolor bool
	trace   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "names: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, errout io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	fs.SetOutput(errout)
	fs.StringVar(&opts.prefix, "prefix", "A", "prefix to select")
	fs.StringVar(&opts.file, "file", "", "read names from this file")
	fs.IntVar(&opts.random, "random", 0, "select from n random first names")
	fs.BoolVar(&opts.html, "html", false, "output an HTML list")
	fs.IntVar(&opts.width, "width", 0, "line width for console output")
	fs.BoolVar(&opts.nocolor, "nocolor", false, "do not highlight the matched prefix")
	fs.BoolVar(&opts.trace, "trace", false, "trace at debug level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.random < 0 {
		return nil, fmt.Errorf("invalid number of random names: %d", opts.random)
	} else if opts.random > 0 && opts.file != "" {
		return nil, errors.New("flags -file and -random are mutually exclusive")
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	setupTracing(opts.trace)
	var names iter.Seq[string]
	if opts.random > 0 {
		names = randomNames(opts.random)
	} else if names, err = loadNames(opts.file); err != nil {
		return err
	}
	selectFn := selectNames
	if opts.trace {
		selectFn = selectNamesTraced
	}
	selected, err := selectFn(names, opts.prefix)
	if err != nil {
		return err
	}
	hl := format.HighlightRunes(utf8.RuneCountInString(opts.prefix))
	if opts.html {
		title := fmt.Sprintf("Names starting with %q", opts.prefix)
		return format.WriteHTML(out, title, selected, hl)
	}
	var config *format.Config
	if opts.width > 0 {
		config = &format.Config{LineWidth: opts.width}
	} else {
		config = format.ConfigFromTerminal()
	}
	con := format.NewConsole(color.New(color.FgBlue, color.Bold))
	if opts.nocolor {
		con.Highlight = nil
	}
	return con.Write(out, selected, hl, config)
}

func setupTracing(debug bool) {
	gtrace.CoreTracer = gologadapter.New()
	level := tracing.LevelInfo
	if debug {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	tracing.Select("bselect").SetTraceLevel(level)
}

// randomNames generates n first names. The sequence is generated anew for
// every range over it.
func randomNames(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for range n {
			if !yield(faker.FirstName()) {
				return
			}
		}
	}
}

func loadNames(file string) (iter.Seq[string], error) {
	if file == "" {
		return slices.Values(defaultNames), nil
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".html", ".htm":
		return textfile.HTMLItems(file)
	}
	return textfile.Lines(file)
}

// selectNames returns the names matching prefix, in ascending order.
func selectNames(names iter.Seq[string], prefix string) ([]string, error) {
	seq, err := bselect.Select(names, bselect.HasPrefixFold(prefix))
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// selectNamesTraced is like selectNames, but builds an instrumented tree with
// nodes taken from a slab allocator, and traces its shape.
func selectNamesTraced(names iter.Seq[string], prefix string) ([]string, error) {
	factory := &btree.CountingFactory[string]{
		Factory: btree.NewSlabFactory[string](btree.DefaultSlabSize),
	}
	tree, err := btree.NewOrdered(bselect.DefaultDegree, btree.WithFactory[string](factory))
	if err != nil {
		return nil, err
	}
	if err = tree.Build(names); err != nil {
		return nil, err
	}
	bselect.T().Debugf("names: %d names in %d nodes, height %d", tree.Len(), factory.Created, tree.Height())
	seq, err := tree.Select(bselect.HasPrefixFold(prefix))
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
