package lint

import (
	"errors"
	"iter"
	"regexp"
)

// ErrNoWordGroup is returned by Words when the word pattern matches without
// capturing a word. It signals a defect in the pattern, not bad input, and
// aborts the whole run.
var ErrNoWordGroup = errors.New("word pattern matched without a word group")

// wordPattern matches a word optionally followed by a single punctuation mark.
// Group 1 is the word, group 2 the punctuation.
//
//nolint:gochecknoglobals // Compiled once and shared read-only
var wordPattern = regexp.MustCompile(`([\p{L}\p{N}_\-'’` + "`" + `]+)([.,?!\-:;><@#$%^&*()_+=/\]\[])?`)

// IsFatal reports whether err must abort the run rather than be reported.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNoWordGroup)
}

// Words splits text into candidate words and two-word phrases.
//
// A word immediately followed by punctuation is yielded on its own and ends
// the phrase chain. Otherwise it is held back and yielded together with the
// phrase it forms with the next word, so "exact same" yields "exact",
// "exact same" and "same", while "exact. same" never yields the pair.
func Words(text string) iter.Seq2[string, error] {
	return words(text, wordPattern)
}

func words(text string, pattern *regexp.Regexp) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var previous string

		for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if len(match) < 4 || match[2] < 0 || match[2] == match[3] {
				yield("", ErrNoWordGroup)
				return
			}
			word := text[match[2]:match[3]]
			hasPunct := len(match) >= 6 && match[4] >= 0 && match[4] != match[5]

			if previous != "" {
				if !yield(previous, nil) {
					return
				}
				if !yield(previous+" "+word, nil) {
					return
				}
			}

			if hasPunct {
				if !yield(word, nil) {
					return
				}
				previous = ""
			} else {
				previous = word
			}
		}

		if previous != "" {
			yield(previous, nil)
		}
	}
}
