package match

import (
	"fmt"
	"strings"
)

// Blank marks an unknown slot in templates and clue words.
const Blank = '.'

// DefaultMaxSomewhere bounds the somewhere multiset accepted by Synthesize.
// Placements grow as k!/(k-m)! for k blanks and m letters.
const DefaultMaxSomewhere = 6

// Template is a fixed-length clue: literal runes and Blank placeholders.
type Template []rune

// ParseTemplate reads '.' as a blank and every other rune as a literal.
func ParseTemplate(s string) Template {
	return Template(s)
}

// Blanks returns the indices of the blank slots.
func (t Template) Blanks() []int {
	var idx []int
	for i, r := range t {
		if r == Blank {
			idx = append(idx, i)
		}
	}
	return idx
}

func (t Template) String() string {
	return string(t)
}

// Synthesizer turns wordle-style knowledge into a Pattern.
type Synthesizer struct {
	// MaxSomewhere caps the somewhere multiset; zero means
	// DefaultMaxSomewhere.
	MaxSomewhere int
}

// Synthesize uses a Synthesizer with the default cap.
func Synthesize(t Template, somewhere, eliminated string) (*Pattern, error) {
	return Synthesizer{}.Synthesize(t, somewhere, eliminated)
}

// Synthesize returns the pattern matching every word that agrees with the
// template's literals, holds each somewhere letter (counted with
// multiplicity) in a distinct blank, and has no eliminated letter in the
// blanks left over.
//
// Every ordered placement of the somewhere letters into the blanks becomes
// one alternative. Repeated letters are separate placement units, so "ee"
// demands two blanks holding e. Placements that only swap equal letters
// produce the same alternative and are emitted once.
func (s Synthesizer) Synthesize(t Template, somewhere, eliminated string) (*Pattern, error) {
	limit := s.MaxSomewhere
	if limit <= 0 {
		limit = DefaultMaxSomewhere
	}
	letters := []rune(somewhere)
	if len(letters) > limit {
		return nil, invalid(somewhere, fmt.Sprintf("at most %d somewhere letters are supported", limit))
	}

	blanks := t.Blanks()
	rest := NotInSlot(NewCharset(eliminated))

	// filled[i] is the letter placed in blanks[i] when used[i] is set.
	filled := make([]rune, len(blanks))
	used := make([]bool, len(blanks))
	seen := make(map[string]struct{})
	pattern := NewPattern()

	var place func(n int)
	place = func(n int) {
		if n == len(letters) {
			key := placementKey(filled, used)
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			pattern.Alternatives = append(pattern.Alternatives, t.sequence(blanks, filled, used, rest))
			return
		}
		for i := range blanks {
			if used[i] {
				continue
			}
			filled[i], used[i] = letters[n], true
			place(n + 1)
			filled[i], used[i] = 0, false
		}
	}
	place(0)

	return pattern, nil
}

// placementKey identifies a placement. The fixed-width occupancy mask
// comes first so the rune part cannot be misread.
func placementKey(filled []rune, used []bool) string {
	var b strings.Builder
	for _, u := range used {
		if u {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	for i, r := range filled {
		if used[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (t Template) sequence(blanks []int, filled []rune, used []bool, rest Slot) Sequence {
	seq := make(Sequence, len(t))
	for i, r := range t {
		seq[i] = LiteralSlot(r)
	}
	for i, pos := range blanks {
		if used[i] {
			seq[pos] = LiteralSlot(filled[i])
		} else {
			seq[pos] = rest
		}
	}
	return seq
}

// Class labels one rune of a matched word for display.
type Class uint8

const (
	Plain Class = iota
	// Exact is a literal template letter.
	Exact
	// Somewhere is a blank holding one of the somewhere letters.
	Somewhere
)

// Classify labels each rune of word against the template. Somewhere letters
// are consumed left to right, so a letter given once highlights once.
// Runes past the template's end are Plain.
func Classify(t Template, somewhere, word string) []Class {
	remaining := make(map[rune]int)
	for _, r := range somewhere {
		remaining[r]++
	}
	runes := []rune(word)
	classes := make([]Class, len(runes))
	for i, r := range runes {
		if i >= len(t) {
			break
		}
		switch {
		case t[i] != Blank:
			if t[i] == r {
				classes[i] = Exact
			}
		case remaining[r] > 0:
			remaining[r]--
			classes[i] = Somewhere
		}
	}
	return classes
}

// Describe summarises a wordle query for debug output.
func Describe(t Template, somewhere, eliminated string) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("template=%s blanks=%d", t, len(t.Blanks())))
	if somewhere != "" {
		parts = append(parts, "somewhere="+somewhere)
	}
	if eliminated != "" {
		parts = append(parts, "eliminated="+NewCharset(eliminated).String())
	}
	return strings.Join(parts, " ")
}
