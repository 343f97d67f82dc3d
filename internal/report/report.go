// Package report formats match and repeat records for terminal display:
// colored match highlighting, pluralized labels, and thousands-grouped
// counts. Adapted from eutils/xplore.go's -COLOR directive (fatih/color
// highlighting of search hits), eutils/json.go's inflector.Pluralize/
// Singularize tag handling, and eutils/align.go's
// message.NewPrinter(language.English) count formatting — the same
// three libraries, redirected from XML/JSON record exploration to
// match/repeat reporting. Decoupled from discovery per spec.md §9
// ("printing is interleaved with algorithmic logic... decouple:
// algorithms should yield records; a separate formatter renders them"):
// every algorithmic package in this module returns plain records, and
// only this package turns them into text.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer renders match/repeat records to w, optionally in color.
type Printer struct {
	w      io.Writer
	plain  bool
	hit    *color.Color
	number *message.Printer
}

// New builds a Printer. plain disables ANSI color (the -COLOR "-"/
// "reset"/"clear" case in eutils/xplore.go).
func New(w io.Writer, plain bool) *Printer {
	return &Printer{
		w:      w,
		plain:  plain,
		hit:    color.New(color.FgRed, color.Bold),
		number: message.NewPrinter(language.English),
	}
}

// Highlight returns text with the byte range [start,start+length) marked;
// in color mode the match is bold red, otherwise bracketed in plain text.
func (p *Printer) Highlight(text []byte, start, length int) string {
	if start < 0 || length < 0 || start+length > len(text) {
		return string(text)
	}
	before := string(text[:start])
	match := string(text[start : start+length])
	after := string(text[start+length:])
	if p.plain {
		return before + "[" + match + "]" + after
	}
	return before + p.hit.Sprint(match) + after
}

// Count formats n with the grouping an English reader expects
// (1,234 rather than 1234), matching align.go's message.Printer use.
func (p *Printer) Count(n int) string {
	return p.number.Sprintf("%d", n)
}

// Label pluralizes or singularizes noun for a count, e.g. "1 match" /
// "3 matches", the same inflector call json.go uses to turn an XML tag
// into its JSON array/object counterpart.
func (p *Printer) Label(noun string, n int) string {
	if n == 1 {
		return inflector.Singularize(noun)
	}
	return inflector.Pluralize(noun)
}

// MatchLine writes one "pos: count label" summary line, the shape
// xtract's exploration reports use for search-hit tallies.
func (p *Printer) MatchLine(pos int, noun string, count int) {
	fmt.Fprintf(p.w, "%s: %s %s\n", p.Count(pos), p.Count(count), p.Label(noun, count))
}
