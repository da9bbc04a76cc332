package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/bastiangx/wordhunt/internal/logger"
	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
)

// Shell is an interactive loop reading one query per line.
type Shell struct {
	runner *Runner
	l      *readline.Instance
	log    *log.Logger
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("using",
			readline.PcItem("--min"), readline.PcItem("--must"), readline.PcItem("--nocolor")),
		readline.PcItem("search",
			readline.PcItem("--contains")),
		readline.PcItem("wordle",
			readline.PcItem("--somewhere"), readline.PcItem("--eliminated"),
			readline.PcItem("--regex"), readline.PcItem("--debug"), readline.PcItem("--nocolor")),
		readline.PcItem("keyword",
			readline.PcItem("--all")),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// NewShell creates a shell around runner. historyFile may be empty.
func NewShell(runner *Runner, historyFile string) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[36mwordhunt>\033[0m ",
		HistoryFile:     historyFile,
		AutoComplete:    completer(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Shell{runner: runner, l: l, log: logger.New("shell")}, nil
}

// Loop reads lines until exit, EOF, or Ctrl+C on an empty line.
func (s *Shell) Loop() error {
	defer s.l.Close()
	s.log.Debug("Shell started")

	for {
		line, err := s.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if s.Exec(line) {
			break
		}
	}
	s.log.Debug("Exiting readline loop...")
	return nil
}

// Exec runs one shell line and reports whether the shell should stop.
// Query errors are logged; they never end the session.
func (s *Shell) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields, err := shellquote.Split(line)
	if err != nil {
		s.log.Error("Could not parse line", "err", err)
		return false
	}

	switch fields[0] {
	case "exit", "quit":
		return true
	case "help":
		Usage(s.runner.out)
		return false
	}

	err = s.runner.Run(fields)
	switch {
	case err == nil:
	case errors.Is(err, match.ErrUnsatisfiable):
		s.log.Warn(err)
	default:
		s.log.Error(err)
	}
	return false
}
