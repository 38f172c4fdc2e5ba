package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: file is not a regular file")

// ErrInvalidUTF8 is returned for input which is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")

// Lines reads a text file and returns its lines as a sequence, one element
// per line. Leading and trailing white space is trimmed from every line, and
// blank lines are dropped.
//
// Opening and reading the file is done synchronously; the returned sequence
// holds no reference to the file and may be ranged over any number of times.
func Lines(name string) (iter.Seq[string], error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	tracer().Debugf("textfile: read %d lines from %s", len(lines), name)
	return slices.Values(lines), nil
}

// ReadLines reads all lines from r, with the same trimming rules as Lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w in line %q", ErrInvalidUTF8, line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return os.Open(name) // just open for read access
}
