package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary holds the word set and the set of all prefixes of all words.
// It is immutable after construction and safe for concurrent readers.
type Dictionary struct {
	words    map[string]struct{}
	prefixes map[string]struct{}
}

// NewDictionary builds the word set and its prefix closure: for every word,
// each prefix of length 0..len(word) is registered.
func NewDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{
		words:    make(map[string]struct{}, len(words)),
		prefixes: make(map[string]struct{}),
	}
	for i, w := range words {
		if err := validateWord(w); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		d.add(w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// ReadDictionary parses a newline-delimited word list. Blank lines are
// skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		words:    map[string]struct{}{},
		prefixes: map[string]struct{}{},
	}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSuffix(sc.Text(), "\r")
		if w == "" {
			continue
		}
		if err := validateWord(w); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if len(d.words) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// LoadDictionary reads a dictionary file from disk.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	return ReadDictionary(f)
}

func validateWord(w string) error {
	if w == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for _, r := range w {
		if !Action(r).IsSymbol() {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidWord, w, r)
		}
	}
	return nil
}

func (d *Dictionary) add(word string) {
	d.words[word] = struct{}{}
	for i := 0; i <= len(word); i++ {
		d.prefixes[word[:i]] = struct{}{}
	}
}

func (d *Dictionary) IsWord(s string) bool {
	_, ok := d.words[s]
	return ok
}

func (d *Dictionary) IsPrefix(s string) bool {
	_, ok := d.prefixes[s]
	return ok
}

// Extensions returns, in alphabet order, every symbol that extends prefix
// to another registered prefix.
func (d *Dictionary) Extensions(prefix string) []Action {
	var actions []Action
	for _, r := range Alphabet {
		if d.IsPrefix(prefix + string(r)) {
			actions = append(actions, Action(r))
		}
	}
	return actions
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Prefixes returns the number of distinct prefixes, the empty one included.
func (d *Dictionary) Prefixes() int {
	return len(d.prefixes)
}
