package match

import (
	"strings"

	"github.com/samber/lo"
)

// Clue is a keyword-mode clue word with exactly one blank.
type Clue struct {
	Text   string
	Prefix string
	Suffix string
}

// ParseClue splits s around its single Blank.
func ParseClue(s string) (Clue, error) {
	switch n := strings.Count(s, string(Blank)); {
	case n == 0:
		return Clue{}, invalid(s, "clue has no blank")
	case n > 1:
		return Clue{}, invalid(s, "clue has more than one blank")
	}
	prefix, suffix, _ := strings.Cut(s, string(Blank))
	return Clue{Text: s, Prefix: prefix, Suffix: suffix}, nil
}

// ParseClues parses every clue, failing on the first malformed one.
func ParseClues(texts []string) ([]Clue, error) {
	if len(texts) == 0 {
		return nil, invalid("", "at least one clue is required")
	}
	clues := make([]Clue, len(texts))
	for i, s := range texts {
		c, err := ParseClue(s)
		if err != nil {
			return nil, err
		}
		clues[i] = c
	}
	return clues, nil
}

// Pattern matches dictionary words that fit the clue: prefix, any one rune,
// suffix.
func (c Clue) Pattern() *Pattern {
	seq := make(Sequence, 0, len(c.Prefix)+len(c.Suffix)+1)
	for _, r := range c.Prefix {
		seq = append(seq, LiteralSlot(r))
	}
	seq = append(seq, AnySlot())
	for _, r := range c.Suffix {
		seq = append(seq, LiteralSlot(r))
	}
	return NewPattern(seq)
}

// Inline fills the blank with r.
func (c Clue) Inline(r rune) string {
	return c.Prefix + string(r) + c.Suffix
}

// blankIndex is the rune offset of the blank.
func (c Clue) blankIndex() int {
	return len([]rune(c.Prefix))
}

// Candidate is a dictionary word fitting a clue and the rune it puts in the
// blank.
type Candidate struct {
	Word   string
	Letter rune
}

// Resolved is the letter chosen for one clue and the first candidate word
// that supplies it.
type Resolved struct {
	Clue   Clue
	Letter rune
	Source string
}

// Solution is a keyword and the per-clue letters spelling it.
type Solution struct {
	Keyword string
	Letters []Resolved
}

// PrefixLookup narrows a word list to the entries starting with a prefix,
// keeping list order.
type PrefixLookup interface {
	WithPrefix(prefix string) []string
}

// KeywordSolver resolves clue blanks so that the blank letters, read in clue
// order, spell a dictionary word.
//
// Each keyword position depends only on its own clue, so a word matching
// the per-position letter sets is always a valid joint assignment. The
// solver reports the first such word in list order; SolveAll reports every
// one.
type KeywordSolver struct {
	words  []string
	lookup PrefixLookup
}

// NewKeywordSolver builds a solver over words. lookup may be nil, in which
// case candidate scans walk the whole list.
func NewKeywordSolver(words []string, lookup PrefixLookup) *KeywordSolver {
	return &KeywordSolver{words: words, lookup: lookup}
}

// SolveKeyword parses the clues and returns the first solution over words.
func SolveKeyword(words []string, clues ...string) (*Solution, error) {
	parsed, err := ParseClues(clues)
	if err != nil {
		return nil, err
	}
	return NewKeywordSolver(words, nil).Solve(parsed)
}

// Candidates lists the dictionary words fitting c, in list order.
// Possessive entries never count as candidates.
func (s *KeywordSolver) Candidates(c Clue) []Candidate {
	pool := s.words
	if s.lookup != nil && c.Prefix != "" {
		pool = s.lookup.WithPrefix(c.Prefix)
	}
	at := c.blankIndex()
	var out []Candidate
	for _, w := range Search(pool, c.Pattern(), true) {
		if isPossessive(w) {
			continue
		}
		out = append(out, Candidate{Word: w, Letter: []rune(w)[at]})
	}
	return out
}

func isPossessive(w string) bool {
	return strings.ContainsAny(w, "'’")
}

// Solve returns the first keyword in list order, or ErrUnsatisfiable.
func (s *KeywordSolver) Solve(clues []Clue) (*Solution, error) {
	sols, err := s.solve(clues, 1)
	if err != nil {
		return nil, err
	}
	return &sols[0], nil
}

// SolveAll returns every keyword in list order, or ErrUnsatisfiable when
// there is none.
func (s *KeywordSolver) SolveAll(clues []Clue) ([]Solution, error) {
	return s.solve(clues, -1)
}

func (s *KeywordSolver) solve(clues []Clue, limit int) ([]Solution, error) {
	if len(clues) == 0 {
		return nil, invalid("", "at least one clue is required")
	}
	cands := make([][]Candidate, len(clues))
	keyword := make(Sequence, len(clues))
	for i, c := range clues {
		cands[i] = s.Candidates(c)
		letters := lo.Map(cands[i], func(cd Candidate, _ int) rune { return cd.Letter })
		keyword[i] = OneOfSlot(NewCharset(string(letters)))
	}

	pattern := NewPattern(keyword)
	var sols []Solution
	for _, w := range s.words {
		if !pattern.MatchWord(w) {
			continue
		}
		sols = append(sols, assemble(w, clues, cands))
		if limit > 0 && len(sols) == limit {
			break
		}
	}
	if len(sols) == 0 {
		return nil, ErrUnsatisfiable
	}
	return sols, nil
}

func assemble(keyword string, clues []Clue, cands [][]Candidate) Solution {
	sol := Solution{Keyword: keyword, Letters: make([]Resolved, len(clues))}
	for i, r := range []rune(keyword) {
		src, _ := lo.Find(cands[i], func(cd Candidate) bool { return cd.Letter == r })
		sol.Letters[i] = Resolved{Clue: clues[i], Letter: r, Source: src.Word}
	}
	return sol
}
