// Package dictionary loads word lists and indexes them by prefix.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/unicode/norm"
)

// ErrSource is wrapped by every failure to read a word list.
var ErrSource = errors.New("word list unavailable")

// Dictionary is an ordered, read-only word list. Its prefix index is built
// on first use.
type Dictionary struct {
	path  string
	words []string

	once sync.Once
	trie *patricia.Trie
}

// Stats describes a loaded list.
type Stats struct {
	Path      string
	Words     int
	Unique    int
	MaxLength int
}

// New wraps an in-memory list. The slice is not copied and must not be
// modified afterwards.
func New(words []string) *Dictionary {
	return &Dictionary{words: words}
}

// Load reads a word list file: one word per whitespace-delimited token.
func Load(path string) (*Dictionary, error) {
	if err := ValidateFile(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	defer file.Close()

	d, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d.path = path
	log.Debugf("Loaded %d words from %s", len(d.words), path)
	return d, nil
}

// Read tokenizes r on whitespace. Tokens are NFC-normalized so composed and
// decomposed spellings compare equal. Order is kept; duplicates are kept.
func Read(r io.Reader) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, norm.NFC.String(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	if len(words) == 0 {
		log.Warn("Word list is empty, every query will come back empty")
	}
	return New(words), nil
}

// Words returns the list in its natural order.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Path returns the file the list was loaded from, if any.
func (d *Dictionary) Path() string {
	return d.path
}

func (d *Dictionary) index() *patricia.Trie {
	d.once.Do(func() {
		trie := patricia.NewTrie()
		for i, w := range d.words {
			if w == "" {
				continue
			}
			key := patricia.Prefix(w)
			if item := trie.Get(key); item != nil {
				trie.Set(key, append(item.([]int), i))
				continue
			}
			trie.Insert(key, []int{i})
		}
		d.trie = trie
		log.Debugf("Prefix index built over %d words", len(d.words))
	})
	return d.trie
}

// WithPrefix returns the entries starting with prefix, in list order.
func (d *Dictionary) WithPrefix(prefix string) []string {
	if prefix == "" {
		return d.words
	}
	var positions []int
	err := d.index().VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting prefix index: %v", err)
		return nil
	}
	sort.Ints(positions)
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = d.words[p]
	}
	return out
}

// Stats summarizes the list.
func (d *Dictionary) Stats() Stats {
	seen := make(map[string]struct{}, len(d.words))
	maxLen := 0
	for _, w := range d.words {
		seen[w] = struct{}{}
		if n := len([]rune(w)); n > maxLen {
			maxLen = n
		}
	}
	return Stats{Path: d.path, Words: len(d.words), Unique: len(seen), MaxLength: maxLen}
}
