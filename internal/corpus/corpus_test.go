package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
)

func TestFromBytesRaw(t *testing.T) {
	s, err := FromBytes([]byte("mississippi"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if string(s.Bytes()) != "mississippi" {
		t.Fatalf("Bytes() = %q", s.Bytes())
	}
}

func TestFromBytesFasta(t *testing.T) {
	raw := []byte(">seq1 description\nACGT\nACGT\n>seq2\nTTTT\n")
	s, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if string(s.Bytes()) != "ACGTACGTTTTT" {
		t.Fatalf("Bytes() = %q, want concatenated sequence lines", s.Bytes())
	}
}

func TestFromBytesEmpty(t *testing.T) {
	if _, err := FromBytes(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestFromBytesFastaNoData(t *testing.T) {
	if _, err := FromBytes([]byte(">onlyheader\n")); err == nil {
		t.Fatalf("expected error for FASTA record with no sequence data")
	}
}

func TestLoadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("banana"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(s.Bytes()) != "banana" {
		t.Fatalf("Bytes() = %q", s.Bytes())
	}
}

func TestLoadGzippedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fasta.gz")
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(">seq1\nACGTACGT\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(s.Bytes()) != "ACGTACGT" {
		t.Fatalf("Bytes() = %q", s.Bytes())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
