// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordhunt command line, shell and IPC server.

WordHunt looks words up by what is known about them: the letters they may be
built from, a regular expression, a wordle-style clue, or a set of clue words
whose missing letters spell another word. Results always come back in word
list order.

# Usage

Words built only from a set of letters, at least 4 long, containing "at":

	wordhunt using act --min 4 --must at

Words matching a POSIX regular expression, anywhere inside the word:

	wordhunt search 'c.t' --contains

Wordle clue: 'a' second and 'e' last, a 't' in one of the other blanks, and
no 'g', 'r' or 's' left over:

	wordhunt wordle .a.e --somewhere t --eliminated grs

Keyword puzzles: every clue has one blank, and the blanks spell a word:

	wordhunt keyword c.t d.g
	wordhunt keyword c.t d.g --all

Exit status is 0 on success (including no matches), 1 when no keyword fits
the clues, 2 for bad input, 3 when the word list cannot be read and 4 when
the shell or server fails.

# Word List

The word list is a plain text file with whitespace separated words. It is
taken from -source, then source.path in the config, then $WORDHUNT_SOURCE,
then the first of /usr/share/dict/words, /usr/dict/words and words.txt next
to the executable.

# Configuration

Runtime configuration lives in a TOML file, by default
[UserConfigDir]/wordhunt/config.toml. Write the defaults with -init-config:

	[source]
	path = ""
	min_word_length = 0

	[wordle]
	max_somewhere = 6
	color = true

	[keyword]
	all = false

	[server]
	max_results = 500

Sections that fail to parse fall back to the defaults individually.

# Shell Mode

	wordhunt shell

reads one query per line with history and completion. Arguments are split
like a POSIX shell, so quoting works as it does on the command line.

# IPC Protocol

	wordhunt serve

reads MessagePack requests from stdin and writes one response per request to
stdout:

	{"id": "r1", "op": "wordle", "template": ".a.e", "somewhere": "t"}
	{"id": "r1", "words": ["late", "tale"], "count": 2, "t": 87}

See package server for every op.

# Command Line Flags

	-source string
	    Word list to search
	-config string
	    Config file path
	-init-config
	    Write the default config and exit
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/wordhunt/internal/cli"
	"github.com/bastiangx/wordhunt/internal/logger"
	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/bastiangx/wordhunt/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

const (
	Version = "0.3.0"
	AppName = "wordhunt"
	gh      = "https://github.com/bastiangx/wordhunt"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n\n", AppName)
	cli.Usage(os.Stderr)
	fmt.Fprintln(os.Stderr, "  shell\n        interactive mode\n  serve\n        MessagePack IPC on stdin/stdout")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

// main only manages the flow; lookups live in the cli and server packages.
func main() {
	flag.Usage = usage
	showVersion := flag.Bool("version", false, "Show current version")
	sourcePath := flag.String("source", "", "Word list to search")
	configPath := flag.String("config", "", "Config file path")
	initConfig := flag.Bool("init-config", false, "Write the default config and exit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(cli.ExitOK)
	}

	logger.Setup(*debugMode)

	if *initConfig {
		os.Exit(writeConfig(*configPath))
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(cli.ExitInvalid)
	}
	command := args[0]
	if command != "shell" && command != "serve" && !lo.Contains(cli.Commands, command) {
		log.Errorf("Unknown command: %s", command)
		usage()
		os.Exit(cli.ExitInvalid)
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		os.Exit(cli.ExitResource)
	}
	if usedConfig != "" {
		log.Debugf("Using config file: (%s)", usedConfig)
	}

	dict, err := loadDictionary(*sourcePath, cfg.Source.Path)
	if err != nil {
		log.Errorf("Failed to load word list: %v", err)
		os.Exit(cli.ExitCode(err))
	}

	switch command {
	case "serve":
		log.Debug("spawning IPC")
		showStartupInfo(dict)
		sigHandler()
		if err := server.NewServer(dict, cfg).Start(); err != nil {
			log.Errorf("Server stopped: %v", err)
			os.Exit(cli.ExitFailure)
		}
	case "shell":
		shell, err := cli.NewShell(cli.NewRunner(dict, cfg, os.Stdout), filepath.Join(os.TempDir(), "wordhunt_history"))
		if err != nil {
			log.Errorf("Failed to start shell: %v", err)
			os.Exit(cli.ExitFailure)
		}
		if err := shell.Loop(); err != nil {
			log.Errorf("Shell error: %v", err)
			os.Exit(cli.ExitFailure)
		}
	default:
		sigHandler()
		os.Exit(runOnce(dict, cfg, args))
	}
}

// runOnce runs a single query and returns the exit status.
func runOnce(dict *dictionary.Dictionary, cfg *config.Config, args []string) int {
	out := bufio.NewWriter(os.Stdout)
	err := cli.NewRunner(dict, cfg, out).Run(args)
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	switch {
	case err == nil:
	case errors.Is(err, match.ErrUnsatisfiable):
		log.Warn(err)
	default:
		log.Error(err)
	}
	return cli.ExitCode(err)
}

func loadDictionary(flagPath, configPath string) (*dictionary.Dictionary, error) {
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrSource, err)
	}
	path, err := pathResolver.ResolveSource(flagPath, configPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using word list at: %s", utils.GetAbsolutePath(path))
	return dictionary.Load(path)
}

func writeConfig(path string) int {
	if path == "" {
		var err error
		if path, err = config.GetDefaultConfigPath(); err != nil {
			log.Errorf("Failed to determine config path: (%v)", err)
			return cli.ExitResource
		}
	}
	if err := config.WriteDefault(path); err != nil {
		log.Errorf("Failed to write config: %v", err)
		return cli.ExitResource
	}
	fmt.Fprintln(os.Stderr, "Wrote default config to", utils.GetAbsolutePath(path))
	return cli.ExitOK
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordHunt ] Finds words from what you know about them")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the loaded list.
func showStartupInfo(dict *dictionary.Dictionary) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := dict.Stats()
	println("===========")
	println(" WordHunt  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("word list: ( %s )", stats.Path)
	log.Info("words", "total", stats.Words, "unique", stats.Unique, "longest", stats.MaxLength)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
