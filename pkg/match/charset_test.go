package match

import (
	"testing"
	"unicode/utf8"

	"github.com/matryer/is"
)

var smallList = []string{"", "cat", "act", "tact", "dog", "cats", "scatter", "at"}

func words(ms []Match) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.Word)
	}
	return out
}

func TestUsing(t *testing.T) {
	testCases := []struct {
		charset  string
		min      int
		must     string
		expected []string
		desc     string
	}{
		{"tca", 0, "", []string{"", "cat", "act", "tact", "at"}, "letters may repeat"},
		{"act", 3, "", []string{"cat", "act", "tact"}, "minimum length"},
		{"tcas", 4, "", []string{"tact", "cats"}, "extra letter in charset"},
		{"tca", 0, "at", []string{"cat", "at"}, "required substring"},
		{"", 0, "", []string{""}, "empty charset keeps only the empty word"},
		{"xyz", 1, "", nil, "nothing constructible"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			is := is.New(t)
			got := Using(smallList, NewCharset(tc.charset), tc.min, tc.must)
			is.Equal(words(got), tc.expected)
		})
	}
}

func TestUsingMarksFirstOccurrence(t *testing.T) {
	is := is.New(t)
	got := Using([]string{"cat", "dog", "tatat"}, NewCharset("cat"), 0, "at")
	is.Equal(len(got), 2)
	is.Equal(got[0], Match{Word: "cat", Mark: Span{Start: 1, End: 3}})
	is.Equal(got[1].Mark, Span{Start: 1, End: 3}) // first of two occurrences
	is.True(!got[0].Mark.Empty())
}

func TestUsingWithoutMustLeavesNoMark(t *testing.T) {
	is := is.New(t)
	for _, m := range Using(smallList, NewCharset("cat"), 0, "") {
		is.True(m.Mark.Empty())
	}
}

// Returned iff every rune is in the charset and the length bound holds.
func TestUsingSoundness(t *testing.T) {
	is := is.New(t)
	list := []string{"über", "bube", "rübe", "bür", "ab", "ba", "a"}
	cs := NewCharset("übre")
	got := map[string]bool{}
	for _, m := range Using(list, cs, 3, "") {
		got[m.Word] = true
	}
	for _, w := range list {
		want := cs.Covers(w) && utf8.RuneCountInString(w) >= 3
		is.Equal(got[w], want) // soundness for w
	}
}

func TestCharsetSorted(t *testing.T) {
	is := is.New(t)
	cs := NewCharset("tacat")
	is.Equal(len(cs), 3)
	is.Equal(cs.String(), "act")
}
