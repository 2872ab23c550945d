package pdf2json

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/subjectivetech/pdf2json/extract"
)

func sampleResult() *Result {
	return assemble(sampleInfo(), []extract.Page{{Number: 1, Text: "Hello"}}, true, time.Now())
}

func TestWriteResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := writeResult(sampleResult(), path); err != nil {
		t.Fatalf("writeResult returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Content.Pages[0].Text != "Hello" {
		t.Errorf("round-tripped page text = %q", decoded.Content.Pages[0].Text)
	}
}

func TestWriteResultKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := writeResult(sampleResult(), path); err != nil {
		t.Fatalf("writeResult returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	metaIdx := strings.Index(text, `"metadata"`)
	contentIdx := strings.Index(text, `"content"`)
	if metaIdx < 0 || contentIdx < 0 || metaIdx > contentIdx {
		t.Errorf("metadata must precede content in the serialized output")
	}
	if nameIdx, hashIdx := strings.Index(text, `"name"`), strings.Index(text, `"source_file_hash"`); nameIdx > hashIdx {
		t.Errorf("metadata keys must keep declaration order")
	}
}

func TestWriteResultCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	if err := writeResult(sampleResult(), path); err != nil {
		t.Fatalf("writeResult returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestWriteResultFailure(t *testing.T) {
	// A regular file in the directory position makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := writeResult(sampleResult(), filepath.Join(blocker, "nested", "out.json"))
	if err == nil {
		t.Fatal("expected error writing under a file")
	}
	if !errors.Is(err, ErrWrite) {
		t.Errorf("error %v is not ErrWrite", err)
	}
}
