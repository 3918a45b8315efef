// Package dict loads the word and phrase lists the checks match against.
//
// Every list is a plain text file with one entry per line. Anything after a
// "#" is a comment, trailing commas are dropped and blank lines are ignored.
// The built-in lists are embedded in the binary; a directory can replace any
// of them file by file.
package dict

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/mdprose/internal/logging"
)

// File names of the individual lists.
const (
	BadWordsFile         = "badwords.txt"
	BadWordsExtendedFile = "badwords_extended.txt"
	CapWordsFile         = "capwords.txt"
	BadPhrasesFile       = "badphrases.txt"
	ContractionsFile     = "contractions.txt"
	FormattersFile       = "syntaxhighlighters.txt"
)

//go:embed data/*.txt
var builtin embed.FS

// Lists holds the raw entries of every dictionary, in file order.
type Lists struct {
	BadWords     []string
	CapWords     []string
	BadPhrases   []string
	Contractions []string
	Formatters   []string
}

// Set is an immutable, indexed collection of dictionaries.
// It is safe for concurrent use.
type Set struct {
	lists      Lists
	badWords   map[string]struct{}
	capWords   map[string]struct{}
	formatters map[string]struct{}
}

// NewSet indexes the given lists. Bad words are lowercased since they are
// matched case-insensitively; every other list is kept as written.
func NewSet(lists Lists) *Set {
	badWords := make([]string, 0, len(lists.BadWords))
	for _, w := range lists.BadWords {
		badWords = append(badWords, strings.ToLower(w))
	}

	s := &Set{
		lists: Lists{
			BadWords:     badWords,
			CapWords:     slices.Clone(lists.CapWords),
			BadPhrases:   slices.Clone(lists.BadPhrases),
			Contractions: slices.Clone(lists.Contractions),
			Formatters:   slices.Clone(lists.Formatters),
		},
	}
	s.badWords = index(s.lists.BadWords)
	s.capWords = index(s.lists.CapWords)
	s.formatters = index(s.lists.Formatters)
	return s
}

func index(entries []string) map[string]struct{} {
	m := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		m[e] = struct{}{}
	}
	return m
}

// IsBadWord reports whether the lowercase form of word is banned.
func (s *Set) IsBadWord(word string) bool {
	_, ok := s.badWords[strings.ToLower(word)]
	return ok
}

// IsCapWord reports whether word is a known miscapitalization.
func (s *Set) IsCapWord(word string) bool {
	_, ok := s.capWords[word]
	return ok
}

// IsFormatter reports whether tag is an accepted code block formatter.
func (s *Set) IsFormatter(tag string) bool {
	_, ok := s.formatters[tag]
	return ok
}

// BadPhrases returns the banned phrases in file order.
func (s *Set) BadPhrases() []string {
	return slices.Clone(s.lists.BadPhrases)
}

// Contractions returns the phrases that should be contracted, in file order.
func (s *Set) Contractions() []string {
	return slices.Clone(s.lists.Contractions)
}

// Formatters returns the accepted formatter tags in file order.
func (s *Set) Formatters() []string {
	return slices.Clone(s.lists.Formatters)
}

// Lists returns a copy of the raw lists.
func (s *Set) Lists() Lists {
	return Lists{
		BadWords:     slices.Clone(s.lists.BadWords),
		CapWords:     slices.Clone(s.lists.CapWords),
		BadPhrases:   slices.Clone(s.lists.BadPhrases),
		Contractions: slices.Clone(s.lists.Contractions),
		Formatters:   slices.Clone(s.lists.Formatters),
	}
}

// Options controls Load.
type Options struct {
	// Dir is a directory whose list files replace the built-in ones.
	// Files missing from Dir fall back to the built-in list.
	Dir string

	// Extended merges the extended bad word list into the bad words.
	Extended bool
}

// Load reads every dictionary, honoring overrides from opts.Dir.
func Load(ctx context.Context, opts Options) (*Set, error) {
	logger := logging.FromContext(ctx)

	if opts.Dir != "" {
		info, err := os.Stat(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("dictionary directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("dictionary directory %s: not a directory", opts.Dir)
		}
	}

	read := func(name string) ([]string, error) {
		entries, source, err := readList(opts.Dir, name)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded dictionary",
			logging.FieldName, name,
			logging.FieldSource, source,
			logging.FieldEntries, len(entries),
		)
		return entries, nil
	}

	var lists Lists
	var errs []error
	targets := []struct {
		name string
		dst  *[]string
	}{
		{BadWordsFile, &lists.BadWords},
		{CapWordsFile, &lists.CapWords},
		{BadPhrasesFile, &lists.BadPhrases},
		{ContractionsFile, &lists.Contractions},
		{FormattersFile, &lists.Formatters},
	}
	for _, target := range targets {
		entries, err := read(target.name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*target.dst = entries
	}

	if opts.Extended {
		extended, err := read(BadWordsExtendedFile)
		if err != nil {
			errs = append(errs, err)
		}
		lists.BadWords = append(lists.BadWords, extended...)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return NewSet(lists), nil
}

// Builtin returns the embedded dictionaries.
func Builtin(extended bool) (*Set, error) {
	return Load(context.Background(), Options{Extended: extended})
}

// readList reads name from dir when present there, else from the embedded data.
func readList(dir, name string) ([]string, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			entries, err := Parse(f)
			if err != nil {
				return nil, "", fmt.Errorf("parse %s: %w", path, err)
			}
			return entries, path, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", fmt.Errorf("open %s: %w", path, err)
		}
	}

	f, err := builtin.Open("data/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("open built-in %s: %w", name, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("parse built-in %s: %w", name, err)
	}
	return entries, "builtin", nil
}

// Parse reads dictionary entries from r.
func Parse(r io.Reader) ([]string, error) {
	var entries []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entry := ParseLine(scanner.Text())
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return entries, nil
}

// ParseLine returns the entry on a single dictionary line, or "" for none.
func ParseLine(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(strings.TrimSpace(line), ",")
	return strings.TrimSpace(line)
}
