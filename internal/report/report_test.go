package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestHighlightPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)
	got := p.Highlight([]byte("ushers"), 2, 3)
	if got != "us[her]s" {
		t.Fatalf("Highlight = %q, want %q", got, "us[her]s")
	}
}

func TestHighlightOutOfRange(t *testing.T) {
	p := New(&bytes.Buffer{}, true)
	got := p.Highlight([]byte("abc"), 2, 5)
	if got != "abc" {
		t.Fatalf("Highlight out-of-range = %q, want original text", got)
	}
}

func TestCountGrouping(t *testing.T) {
	p := New(&bytes.Buffer{}, true)
	if got := p.Count(1234); got != "1,234" {
		t.Fatalf("Count(1234) = %q, want %q", got, "1,234")
	}
}

func TestLabelPlurality(t *testing.T) {
	p := New(&bytes.Buffer{}, true)
	if got := p.Label("match", 1); got != "match" {
		t.Fatalf("Label(1) = %q, want %q", got, "match")
	}
	if got := p.Label("match", 3); got != "matches" {
		t.Fatalf("Label(3) = %q, want %q", got, "matches")
	}
}

func TestMatchLine(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)
	p.MatchLine(3, "match", 2)
	if !strings.Contains(buf.String(), "matches") {
		t.Fatalf("MatchLine output = %q, want it to mention matches", buf.String())
	}
}
