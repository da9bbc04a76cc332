// Package match holds the pure matching core: charset filtering, pattern
// search, clue pattern synthesis and keyword solving. Nothing here touches
// the terminal or the filesystem.
package match

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Charset is an unordered set of runes.
type Charset map[rune]struct{}

// NewCharset builds a set from the runes of s. Duplicates collapse.
func NewCharset(s string) Charset {
	return lo.SliceToMap([]rune(s), func(r rune) (rune, struct{}) {
		return r, struct{}{}
	})
}

// Contains reports whether r is in the set.
func (c Charset) Contains(r rune) bool {
	_, ok := c[r]
	return ok
}

// Covers reports whether every rune of word is in the set.
func (c Charset) Covers(word string) bool {
	for _, r := range word {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (c Charset) Sorted() []rune {
	runes := lo.Keys(c)
	slices.Sort(runes)
	return runes
}

func (c Charset) String() string {
	return string(c.Sorted())
}

// Span is a byte range inside a matched word. An empty span marks nothing.
type Span struct {
	Start, End int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Match is a word accepted by Using, with the first occurrence of the
// required substring located for display.
type Match struct {
	Word string
	Mark Span
}

// Using returns the words built only from runes in charset, at least
// minLength runes long and, when must is non-empty, containing must.
// Letters may repeat; the charset limits which letters, not how many.
func Using(words []string, charset Charset, minLength int, must string) []Match {
	var out []Match
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLength || !charset.Covers(w) {
			continue
		}
		m := Match{Word: w}
		if must != "" {
			i := strings.Index(w, must)
			if i < 0 {
				continue
			}
			m.Mark = Span{Start: i, End: i + len(must)}
		}
		out = append(out, m)
	}
	return out
}
