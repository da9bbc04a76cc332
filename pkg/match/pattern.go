package match

import (
	"regexp"
	"strings"
)

// SlotKind selects how a Slot tests a rune.
type SlotKind uint8

const (
	// Literal accepts exactly Slot.Char.
	Literal SlotKind = iota
	// Any accepts every rune.
	Any
	// NotIn accepts runes outside Slot.Set.
	NotIn
	// OneOf accepts runes inside Slot.Set.
	OneOf
)

// Slot is one position of a Sequence.
type Slot struct {
	Kind SlotKind
	Char rune
	Set  Charset
}

// LiteralSlot returns a slot accepting only r.
func LiteralSlot(r rune) Slot { return Slot{Kind: Literal, Char: r} }

// AnySlot returns a slot accepting every rune.
func AnySlot() Slot { return Slot{Kind: Any} }

// NotInSlot returns a slot rejecting the runes of set. An empty set
// degrades to AnySlot.
func NotInSlot(set Charset) Slot {
	if len(set) == 0 {
		return AnySlot()
	}
	return Slot{Kind: NotIn, Set: set}
}

// OneOfSlot returns a slot accepting only the runes of set.
func OneOfSlot(set Charset) Slot { return Slot{Kind: OneOf, Set: set} }

// Accepts reports whether r satisfies the slot.
func (s Slot) Accepts(r rune) bool {
	switch s.Kind {
	case Literal:
		return r == s.Char
	case Any:
		return true
	case NotIn:
		return !s.Set.Contains(r)
	case OneOf:
		return s.Set.Contains(r)
	}
	return false
}

// Sequence is a fixed-length run of slots, one per rune.
type Sequence []Slot

func (q Sequence) matchAt(runes []rune, start int) bool {
	if start+len(q) > len(runes) {
		return false
	}
	for i, s := range q {
		if !s.Accepts(runes[start+i]) {
			return false
		}
	}
	return true
}

// Pattern is an alternation of sequences. A pattern with no alternatives
// matches nothing.
type Pattern struct {
	Alternatives []Sequence
}

// NewPattern builds a pattern from the given alternatives.
func NewPattern(alts ...Sequence) *Pattern {
	return &Pattern{Alternatives: alts}
}

// MatchWord reports whether some alternative spans the whole word.
func (p *Pattern) MatchWord(word string) bool {
	runes := []rune(word)
	for _, alt := range p.Alternatives {
		if len(alt) == len(runes) && alt.matchAt(runes, 0) {
			return true
		}
	}
	return false
}

// MatchWithin reports whether some alternative matches a contiguous run of
// the word.
func (p *Pattern) MatchWithin(word string) bool {
	runes := []rune(word)
	for _, alt := range p.Alternatives {
		for start := 0; start+len(alt) <= len(runes); start++ {
			if alt.matchAt(runes, start) {
				return true
			}
		}
	}
	return false
}

// never matches any rune; used for empty classes and empty alternations.
const never = `[^\x00-\x{10FFFF}]`

// String renders the pattern as an anchored regular expression. The text
// is for display; matching never goes through it.
func (p *Pattern) String() string {
	if len(p.Alternatives) == 0 {
		return "^" + never + "$"
	}
	alts := make([]string, len(p.Alternatives))
	for i, alt := range p.Alternatives {
		alts[i] = alt.String()
	}
	return "^(" + strings.Join(alts, "|") + ")$"
}

// Regexp compiles the rendered text. Matching through it agrees with
// MatchWord.
func (p *Pattern) Regexp() (*regexp.Regexp, error) {
	return regexp.Compile(p.String())
}

func (q Sequence) String() string {
	var b strings.Builder
	for _, s := range q {
		b.WriteString(s.String())
	}
	return b.String()
}

func (s Slot) String() string {
	switch s.Kind {
	case Literal:
		return regexp.QuoteMeta(string(s.Char))
	case Any:
		return "."
	case NotIn:
		return "[^" + classBody(s.Set) + "]"
	case OneOf:
		if len(s.Set) == 0 {
			return never
		}
		return "[" + classBody(s.Set) + "]"
	}
	return never
}

func classBody(set Charset) string {
	var b strings.Builder
	for _, r := range set.Sorted() {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
