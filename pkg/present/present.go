/*
Package present turns match results into terminal output.

The functions here take finished results from package match and annotate
them. Annotation returns Segments; Printer renders them with lipgloss.
*/
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/charmbracelet/lipgloss"
)

// Tone is the display role of a run of text.
type Tone uint8

const (
	Normal Tone = iota
	// Marked is a located required substring.
	Marked
	// ExactTone is a letter fixed by the template.
	ExactTone
	// SomewhereTone is a blank holding a somewhere letter.
	SomewhereTone
	// Resolved is a keyword letter inlined into its clue.
	Resolved
)

// Segment is a run of text sharing one tone.
type Segment struct {
	Text string
	Tone Tone
}

// MarkSpan splits word around span.
func MarkSpan(word string, span match.Span) []Segment {
	if span.Empty() || span.End > len(word) {
		return []Segment{{Text: word}}
	}
	var segs []Segment
	if span.Start > 0 {
		segs = append(segs, Segment{Text: word[:span.Start]})
	}
	segs = append(segs, Segment{Text: word[span.Start:span.End], Tone: Marked})
	if span.End < len(word) {
		segs = append(segs, Segment{Text: word[span.End:]})
	}
	return segs
}

// Wordle gives each rune of word the tone of its classification,
// merging neighbours of equal tone.
func Wordle(t match.Template, somewhere, word string) []Segment {
	classes := match.Classify(t, somewhere, word)
	var segs []Segment
	for i, r := range []rune(word) {
		tone := Normal
		switch classes[i] {
		case match.Exact:
			tone = ExactTone
		case match.Somewhere:
			tone = SomewhereTone
		}
		if n := len(segs); n > 0 && segs[n-1].Tone == tone {
			segs[n-1].Text += string(r)
			continue
		}
		segs = append(segs, Segment{Text: string(r), Tone: tone})
	}
	return segs
}

// Inline shows a clue with its resolved letter in place of the blank.
func Inline(r match.Resolved) []Segment {
	var segs []Segment
	if r.Clue.Prefix != "" {
		segs = append(segs, Segment{Text: r.Clue.Prefix})
	}
	segs = append(segs, Segment{Text: string(r.Letter), Tone: Resolved})
	if r.Clue.Suffix != "" {
		segs = append(segs, Segment{Text: r.Clue.Suffix})
	}
	return segs
}

// Styles maps tones to lipgloss styles.
type Styles map[Tone]lipgloss.Style

// DefaultStyles follows the usual wordle colours.
func DefaultStyles() Styles {
	return Styles{
		Marked: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		ExactTone: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1f7a1f", Dark: "#6aaa64"}),
		SomewhereTone: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#9a6c00", Dark: "#c9b458"}),
		Resolved: lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
	}
}

// Printer writes results one per line.
type Printer struct {
	w      io.Writer
	color  bool
	styles Styles
}

// NewPrinter returns a printer writing to w. With color off every segment
// is written as plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color, styles: DefaultStyles()}
}

// Render joins segments, styling them when colour is on.
func (p *Printer) Render(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		style, ok := p.styles[s.Tone]
		if !p.color || !ok {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(style.Render(s.Text))
	}
	return b.String()
}

// Words prints plain words.
func (p *Printer) Words(words []string) {
	for _, w := range words {
		fmt.Fprintln(p.w, w)
	}
}

// Using prints charset matches, marking the required substring.
func (p *Printer) Using(ms []match.Match) {
	for _, m := range ms {
		fmt.Fprintln(p.w, p.Render(MarkSpan(m.Word, m.Mark)))
	}
}

// Wordle prints clue matches with per-letter classification.
func (p *Printer) Wordle(words []string, t match.Template, somewhere string) {
	for _, w := range words {
		fmt.Fprintln(p.w, p.Render(Wordle(t, somewhere, w)))
	}
}

// Pattern prints a synthesized pattern's text.
func (p *Printer) Pattern(pat fmt.Stringer) {
	fmt.Fprintln(p.w, pat.String())
}

// Keyword prints the keyword, then each clue with its letter inlined.
func (p *Printer) Keyword(sol match.Solution) {
	fmt.Fprintln(p.w, p.Render([]Segment{{Text: sol.Keyword, Tone: Marked}}))
	for _, r := range sol.Letters {
		fmt.Fprintf(p.w, "  %s\n", p.Render(Inline(r)))
	}
}
