package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// SourceEnv overrides the configured word list when --source is not given.
const SourceEnv = "WORDHUNT_SOURCE"

// ErrNoSource is returned when no candidate word list exists.
var ErrNoSource = errors.New("no word list found")

// systemWordLists are the usual locations of the system dictionary.
var systemWordLists = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// PathResolver locates the word list.
type PathResolver struct {
	executableDir string
	getenv        func(string) string
	system        []string
}

// NewPathResolver creates a resolver rooted at the running executable.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return &PathResolver{
		executableDir: filepath.Dir(execPath),
		getenv:        os.Getenv,
		system:        systemWordLists,
	}, nil
}

// Candidates lists the paths tried by ResolveSource, in order:
// 1. --source flag
// 2. source.path from config
// 3. $WORDHUNT_SOURCE
// 4. system word lists
// 5. words.txt next to the executable
func (pr *PathResolver) Candidates(flagPath, configPath string) []string {
	var candidates []string
	for _, p := range []string{flagPath, configPath, pr.getenv(SourceEnv)} {
		if p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates, pr.system...)
	return append(candidates, filepath.Join(pr.executableDir, "words.txt"))
}

// ResolveSource returns the word list to load. An explicit flag or config
// path is returned even when missing so the loader reports the real error.
func (pr *PathResolver) ResolveSource(flagPath, configPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if configPath != "" {
		return configPath, nil
	}
	for _, path := range pr.Candidates("", "") {
		if FileExists(path) {
			log.Debugf("Found word list: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return "", ErrNoSource
}

// GetExecutableDir returns the directory containing the executable
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}
