package match

import "regexp"

// Matcher is the pattern capability consumed by Search.
type Matcher interface {
	// MatchWord reports a match spanning the entire word.
	MatchWord(word string) bool
	// MatchWithin reports a match of any contiguous part of the word.
	MatchWithin(word string) bool
}

// Search keeps the words accepted by m, in input order. With anchored set
// the match must cover the whole word.
func Search(words []string, m Matcher, anchored bool) []string {
	test := m.MatchWithin
	if anchored {
		test = m.MatchWord
	}
	var out []string
	for _, w := range words {
		if test(w) {
			out = append(out, w)
		}
	}
	return out
}

// Regexp adapts a user supplied POSIX extended regular expression to
// Matcher.
type Regexp struct {
	expr   string
	whole  *regexp.Regexp
	within *regexp.Regexp
}

// CompileRegexp compiles expr with POSIX leftmost-longest semantics. A
// malformed expression is an InputError.
func CompileRegexp(expr string) (*Regexp, error) {
	within, err := regexp.CompilePOSIX(expr)
	if err != nil {
		return nil, &InputError{Input: expr, Reason: "malformed pattern", Err: err}
	}
	whole, err := regexp.CompilePOSIX("^(" + expr + ")$")
	if err != nil {
		return nil, &InputError{Input: expr, Reason: "malformed pattern", Err: err}
	}
	return &Regexp{expr: expr, whole: whole, within: within}, nil
}

func (r *Regexp) MatchWord(word string) bool   { return r.whole.MatchString(word) }
func (r *Regexp) MatchWithin(word string) bool { return r.within.MatchString(word) }
func (r *Regexp) String() string               { return r.expr }
