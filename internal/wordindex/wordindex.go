// Package wordindex stems word-level patterns before they are handed
// to the Aho-Corasick matcher (C5), the way xplore.go's "-stemmed"
// output class and phrase.go's query-term stemming both run
// surgebase/porter2 over a token before it is matched or indexed.
// Stemming here is pattern-side only: it lets a caller search a corpus
// for "run" and match the "running"/"runs" stems without
// generalizing the Aho-Corasick automaton itself.
package wordindex

import (
	"bytes"

	"github.com/surgebase/porter2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rafalcode/gusf/gerr"
	"github.com/rafalcode/gusf/internal/ahocorasick"
)

var lower = cases.Lower(language.English)

// Stem reduces word to its porter2 stem, lower-cased first (via the
// same x/text/cases folding xplore.go uses for its title-casing, here
// applied the other direction) since the stemmer expects lower-case
// input.
func Stem(word string) string {
	return porter2.Stem(lower.String(word))
}

// Words splits text on whitespace, matching the simple tokenizer
// phrase.go uses before stemming query terms.
func Words(text string) []string {
	fields := bytes.Fields([]byte(text))
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// BuildStemmed stems each entry of words whole (entries are not split
// further), then builds an
// Aho-Corasick matcher over the distinct stems so a caller can scan a
// stemmed corpus (built the same way) for any of the original words'
// stem forms.
func BuildStemmed(words []string) (*ahocorasick.Matcher, error) {
	if len(words) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "wordindex: no words given")
	}
	seen := make(map[string]bool, len(words))
	var patterns [][]byte
	for _, w := range words {
		stem := Stem(w)
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		patterns = append(patterns, []byte(stem))
	}
	if len(patterns) == 0 {
		return nil, gerr.New(gerr.InvalidArgument, "wordindex: no non-empty stems")
	}
	return ahocorasick.Build(patterns)
}

// StemText rewrites text word-by-word to its stemmed form, space
// separated, the shape a corpus is normalized into before BuildStemmed's
// matcher is run against it with Scan.
func StemText(text string) string {
	fields := bytes.Fields([]byte(text))
	out := make([][]byte, len(fields))
	for i, f := range fields {
		out[i] = []byte(Stem(string(f)))
	}
	return string(bytes.Join(out, []byte(" ")))
}
