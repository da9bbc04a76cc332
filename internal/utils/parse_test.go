package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestLoadSections(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "c.toml")
	body := "top = 1\n[a]\nname = \"x\"\ncount = \"three\"\nflag = true\n"
	is.NoErr(os.WriteFile(path, []byte(body), 0644))

	sections, err := LoadSections(path)
	is.NoErr(err)
	is.Equal(len(sections), 1) // top-level keys are not tables

	var (
		name  string
		count = 7
		flag  bool
	)
	a := sections["a"]
	a.String("name", &name)
	a.Int("count", &count)
	a.Bool("flag", &flag)
	a.Bool("missing", &flag)
	is.Equal(name, "x")
	is.Equal(count, 7) // wrong type keeps the old value
	is.True(flag)
}
