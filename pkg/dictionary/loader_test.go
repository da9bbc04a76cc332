package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSplitsOnWhitespace(t *testing.T) {
	is := is.New(t)
	d, err := Load(writeList(t, "cat dog\n\tcats\r\ncat\n\n  scatter "))
	is.NoErr(err)
	is.Equal(d.Words(), []string{"cat", "dog", "cats", "cat", "scatter"})
	is.Equal(d.Len(), 5)
	is.True(strings.HasSuffix(d.Path(), "words"))
}

func TestLoadEmptyFile(t *testing.T) {
	is := is.New(t)
	d, err := Load(writeList(t, ""))
	is.NoErr(err)
	is.Equal(d.Len(), 0)
	is.Equal(len(match.Search(d.Words(), match.NewPattern(match.Sequence{}), true)), 0)
}

func TestLoadFailures(t *testing.T) {
	is := is.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	is.True(errors.Is(err, ErrSource))

	_, err = Load(t.TempDir())
	is.True(errors.Is(err, ErrSource)) // directory rejected

	_, err = Load(writeList(t, "cat\x00dog"))
	is.True(errors.Is(err, ErrSource)) // binary rejected
}

func TestReadNormalizes(t *testing.T) {
	is := is.New(t)
	// "e" + combining acute accent
	d, err := Read(strings.NewReader("caf\u00e9 cafe\u0301"))
	is.NoErr(err)
	is.Equal(d.Words()[0], d.Words()[1])
	is.Equal(d.Stats().Unique, 1)
}

func TestWithPrefixKeepsListOrder(t *testing.T) {
	is := is.New(t)
	d := New([]string{"cot", "dog", "cat", "cats", "cat", "", "scatter", "c"})

	is.Equal(d.WithPrefix("ca"), []string{"cat", "cats", "cat"})
	is.Equal(d.WithPrefix("c"), []string{"cot", "cat", "cats", "cat", "c"})
	is.Equal(len(d.WithPrefix("x")), 0)
	is.Equal(len(d.WithPrefix("")), 8)
}

func TestWithPrefixFeedsKeywordSolver(t *testing.T) {
	is := is.New(t)
	d := New([]string{"cat", "cot", "dog", "dig", "oi", "ai", "ao"})
	clues, err := match.ParseClues([]string{"c.t", "d.g"})
	is.NoErr(err)

	sol, err := match.NewKeywordSolver(d.Words(), d).Solve(clues)
	is.NoErr(err)
	is.Equal(sol.Keyword, "oi")
}

func TestStats(t *testing.T) {
	is := is.New(t)
	s := New([]string{"a", "über", "a"}).Stats()
	is.Equal(s, Stats{Words: 3, Unique: 2, MaxLength: 4})
}
