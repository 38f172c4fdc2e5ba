package format

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Width returns the display width of s in fixed width positions.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

/*
firstFit breaks a list of words into lines, greedily. Every word but the last
is followed by sep, which may be broken at its trailing space:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

The result holds the number of words per line. A word wider than the line
gets a line of its own.
*/
func firstFit(words []string, sep string, linewidth int, context *uax11.Context) []int {
	if len(words) == 0 {
		return nil
	}
	sepwidth := Width(sep, context)
	breaks := make([]int, 0, 8)
	spaceleft, count := linewidth, 0
	for i, word := range words {
		w := Width(word, context)
		if i < len(words)-1 {
			w += sepwidth
		}
		if count > 0 && w > spaceleft {
			tracer().Debugf("break before %q", word)
			breaks = append(breaks, count)
			spaceleft, count = linewidth, 0
		}
		spaceleft -= w
		count++
	}
	return append(breaks, count)
}
