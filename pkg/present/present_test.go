package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/matryer/is"
)

func TestMarkSpan(t *testing.T) {
	is := is.New(t)

	is.Equal(MarkSpan("cat", match.Span{Start: 1, End: 3}),
		[]Segment{{Text: "c"}, {Text: "at", Tone: Marked}})
	is.Equal(MarkSpan("scatter", match.Span{Start: 2, End: 4}),
		[]Segment{{Text: "sc"}, {Text: "at", Tone: Marked}, {Text: "ter"}})
	is.Equal(MarkSpan("at", match.Span{Start: 0, End: 2}),
		[]Segment{{Text: "at", Tone: Marked}})
	is.Equal(MarkSpan("dog", match.Span{}), []Segment{{Text: "dog"}})
}

func TestWordleSegments(t *testing.T) {
	is := is.New(t)
	segs := Wordle(match.ParseTemplate(".a.e"), "t", "late")
	is.Equal(segs, []Segment{
		{Text: "l"},
		{Text: "a", Tone: ExactTone},
		{Text: "t", Tone: SomewhereTone},
		{Text: "e", Tone: ExactTone},
	})

	segs = Wordle(match.ParseTemplate("ab.."), "", "abcd")
	is.Equal(segs, []Segment{{Text: "ab", Tone: ExactTone}, {Text: "cd"}})
}

func TestInline(t *testing.T) {
	is := is.New(t)
	c, err := match.ParseClue("c.t")
	is.NoErr(err)
	is.Equal(Inline(match.Resolved{Clue: c, Letter: 'a'}),
		[]Segment{{Text: "c"}, {Text: "a", Tone: Resolved}, {Text: "t"}})

	c, err = match.ParseClue(".og")
	is.NoErr(err)
	is.Equal(Inline(match.Resolved{Clue: c, Letter: 'd'}),
		[]Segment{{Text: "d", Tone: Resolved}, {Text: "og"}})
}

func TestPrinterWithoutColor(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Using([]match.Match{{Word: "cat", Mark: match.Span{Start: 1, End: 3}}, {Word: "at"}})
	p.Wordle([]string{"late"}, match.ParseTemplate(".a.e"), "t")
	is.Equal(buf.String(), "cat\nat\nlate\n")
}

func TestPrinterKeyword(t *testing.T) {
	is := is.New(t)
	sol, err := match.SolveKeyword([]string{"cat", "cot", "dog", "dig", "ai"}, "c.t", "d.g")
	is.NoErr(err)

	var buf bytes.Buffer
	NewPrinter(&buf, false).Keyword(*sol)
	is.Equal(buf.String(), "ai\n  cat\n  dig\n")
}

func TestRenderKeepsText(t *testing.T) {
	is := is.New(t)
	p := NewPrinter(&bytes.Buffer{}, true)
	out := p.Render(MarkSpan("scatter", match.Span{Start: 2, End: 4}))
	is.True(strings.Contains(out, "sc"))
	is.True(strings.Contains(out, "ter"))
}
