// Package cli runs wordhunt queries from argument lists, shared by the
// one-shot command line and the interactive shell.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/bastiangx/wordhunt/pkg/present"
	"github.com/charmbracelet/log"
)

// Exit codes reported by the wordhunt binary.
const (
	ExitOK            = 0
	ExitUnsatisfiable = 1
	ExitInvalid       = 2
	ExitResource      = 3
	ExitFailure       = 4
)

// Commands are the query subcommands a Runner understands.
var Commands = []string{"using", "search", "wordle", "keyword"}

const usageText = `Commands:
  using <charset> [--min N] [--must LETTERS] [--nocolor]
        words built only from charset
  search <regex> [--contains]
        words matching a POSIX regular expression
  wordle <template> [--somewhere L] [--eliminated L] [--regex] [--debug] [--nocolor]
        words fitting a clue; '.' marks a blank
  keyword <clue> <clue>... [--all]
        resolve one blank per clue so the letters spell a word
`

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// ExitCode maps an error from Run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, match.ErrUnsatisfiable):
		return ExitUnsatisfiable
	case errors.Is(err, match.ErrInvalidInput):
		return ExitInvalid
	case errors.Is(err, dictionary.ErrSource), errors.Is(err, utils.ErrNoSource):
		return ExitResource
	}
	return ExitFailure
}

// Runner executes query subcommands against one loaded word list.
type Runner struct {
	dict   *dictionary.Dictionary
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
}

// NewRunner returns a runner printing results to out.
func NewRunner(dict *dictionary.Dictionary, cfg *config.Config, out io.Writer) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Runner{dict: dict, cfg: cfg, out: out, errOut: os.Stderr}
}

// Run executes args[0] with the remaining arguments. Flags may appear
// before or after positional arguments.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return &match.InputError{Reason: "no command given"}
	}
	start := time.Now()
	var err error
	switch args[0] {
	case "using":
		err = r.using(args[1:])
	case "search":
		err = r.search(args[1:])
	case "wordle":
		err = r.wordle(args[1:])
	case "keyword":
		err = r.keyword(args[1:])
	default:
		return &match.InputError{Input: args[0], Reason: "unknown command"}
	}
	log.Debugf("Took [ %v ] for %s", time.Since(start), args[0])
	return err
}

func (r *Runner) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	return fs
}

// parseArgs parses fs, collecting positional arguments found between flags.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, &match.InputError{Input: fs.Name(), Reason: "bad arguments", Err: err}
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func (r *Runner) printer(noColor bool) *present.Printer {
	return present.NewPrinter(r.out, r.cfg.Wordle.Color && !noColor)
}

func checkInput(name, s string) error {
	if !utils.IsValidInput(s) {
		return &match.InputError{Input: s, Reason: name + " must not contain spaces or control characters"}
	}
	return nil
}

func (r *Runner) using(args []string) error {
	fs := r.flags("using")
	minLength := fs.Int("min", r.cfg.Source.MinWordLength, "minimum word length")
	must := fs.String("must", "", "substring every match must contain")
	noColor := fs.Bool("nocolor", false, "do not highlight the required substring")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		return &match.InputError{Input: "using", Reason: "expects exactly one charset"}
	}
	if err := checkInput("charset", pos[0]); err != nil {
		return err
	}

	ms := match.Using(r.dict.Words(), match.NewCharset(pos[0]), *minLength, *must)
	log.Debugf("using %q min=%d must=%q: %d matches", pos[0], *minLength, *must, len(ms))
	r.printer(*noColor).Using(ms)
	return nil
}

func (r *Runner) search(args []string) error {
	fs := r.flags("search")
	contains := fs.Bool("contains", false, "match anywhere inside a word")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		return &match.InputError{Input: "search", Reason: "expects exactly one pattern"}
	}

	re, err := match.CompileRegexp(pos[0])
	if err != nil {
		return err
	}
	words := match.Search(r.dict.Words(), re, !*contains)
	log.Debugf("search %q contains=%t: %d matches", re, *contains, len(words))
	present.NewPrinter(r.out, false).Words(words)
	return nil
}

func (r *Runner) wordle(args []string) error {
	fs := r.flags("wordle")
	somewhere := fs.String("somewhere", "", "letters present at an unknown blank")
	eliminated := fs.String("eliminated", "", "letters absent from every blank")
	showRegex := fs.Bool("regex", false, "print the synthesized pattern and stop")
	debug := fs.Bool("debug", false, "print the synthesized pattern before the matches")
	noColor := fs.Bool("nocolor", false, "do not classify letters by colour")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 || pos[0] == "" {
		return &match.InputError{Input: "wordle", Reason: "expects exactly one template"}
	}
	for _, in := range []string{pos[0], *somewhere, *eliminated} {
		if err := checkInput("clue", in); err != nil {
			return err
		}
	}

	t := match.ParseTemplate(pos[0])
	pattern, err := match.Synthesizer{MaxSomewhere: r.cfg.Wordle.MaxSomewhere}.Synthesize(t, *somewhere, *eliminated)
	if err != nil {
		return err
	}
	p := r.printer(*noColor)
	if *showRegex || *debug {
		p.Pattern(pattern)
		log.Debug(match.Describe(t, *somewhere, *eliminated), "alternatives", len(pattern.Alternatives))
	}
	if *showRegex {
		return nil
	}

	words := match.Search(r.dict.Words(), pattern, true)
	log.Debugf("wordle %q: %d matches", pos[0], len(words))
	p.Wordle(words, t, *somewhere)
	return nil
}

func (r *Runner) keyword(args []string) error {
	fs := r.flags("keyword")
	all := fs.Bool("all", r.cfg.Keyword.All, "list every keyword instead of the first")
	noColor := fs.Bool("nocolor", false, "do not highlight resolved letters")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	clues, err := match.ParseClues(pos)
	if err != nil {
		return err
	}

	solver := match.NewKeywordSolver(r.dict.Words(), r.dict)
	var sols []match.Solution
	if *all {
		sols, err = solver.SolveAll(clues)
	} else {
		var sol *match.Solution
		sol, err = solver.Solve(clues)
		if sol != nil {
			sols = append(sols, *sol)
		}
	}
	if err != nil {
		return err
	}

	p := r.printer(*noColor)
	for _, sol := range sols {
		p.Keyword(sol)
	}
	return nil
}
