package translator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kinosub/kinosub/internal/srt"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,000
hello

2
00:00:03,000 --> 00:00:04,000
world

3
00:00:05,000 --> 00:00:06,000
goodbye
`

func writeTempSRT(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.srt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranslateFile(t *testing.T) {
	transport := &fakeTransport{respond: func(_ int, prompt string) (string, error) {
		texts := sourceTexts(prompt)
		out := make([]string, len(texts))
		for i, s := range texts {
			out[i] = "T:" + s
		}
		return strings.Join(out, "\n"), nil
	}}
	c := NewClient(transport, "Chinese")
	c.sleep = noSleep

	inputPath := writeTempSRT(t, sampleSRT)
	outputPath := filepath.Join(t.TempDir(), "output.srt")

	// Batch size 2 over 3 segments exercises a partial trailing batch.
	err := c.TranslateFile(context.Background(), inputPath, outputPath, Options{
		BatchSize: 2,
		Workers:   2,
	})
	if err != nil {
		t.Fatal(err)
	}

	segments, err := srt.Load(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 3 {
		t.Fatalf("output has %d segments, want 3", len(segments))
	}
	want := []string{"T:hello", "T:world", "T:goodbye"}
	for i, seg := range segments {
		if seg.Text() != want[i] {
			t.Errorf("segment %d = %q, want %q", i, seg.Text(), want[i])
		}
	}
	if transport.callCount() != 2 {
		t.Errorf("transport called %d times, want 2 batches", transport.callCount())
	}
}

func TestTranslateFileInPlace(t *testing.T) {
	transport := &fakeTransport{respond: func(_ int, prompt string) (string, error) {
		return strings.Join(sourceTexts(prompt), "\n"), nil
	}}
	c := NewClient(transport, "Chinese")
	c.sleep = noSleep

	path := writeTempSRT(t, sampleSRT)
	if err := c.TranslateFile(context.Background(), path, path, Options{}); err != nil {
		t.Fatal(err)
	}

	segments, err := srt.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 3 {
		t.Fatalf("in-place output has %d segments, want 3", len(segments))
	}
}

func TestTranslateFileEmptyInput(t *testing.T) {
	transport := &fakeTransport{respond: func(int, string) (string, error) {
		t.Fatal("transport must not be called for an empty file")
		return "", nil
	}}
	c := NewClient(transport, "Chinese")

	inputPath := writeTempSRT(t, "")
	outputPath := filepath.Join(t.TempDir(), "output.srt")

	if err := c.TranslateFile(context.Background(), inputPath, outputPath, Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Fatalf("empty input did not produce an output file: %v", err)
	}
}

func TestTranslateFileMissingInput(t *testing.T) {
	transport := &fakeTransport{respond: func(int, string) (string, error) {
		return "", nil
	}}
	c := NewClient(transport, "Chinese")

	err := c.TranslateFile(context.Background(), filepath.Join(t.TempDir(), "missing.srt"), "out.srt", Options{})
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestTranslateFileDegradedBatchesKeepAlignment(t *testing.T) {
	// The second batch always fails; its segments must carry the failure
	// marker while the first batch's segments are translated normally.
	transport := &fakeTransport{respond: func(_ int, prompt string) (string, error) {
		texts := sourceTexts(prompt)
		if texts[0] == "goodbye" {
			panic("unusable response")
		}
		out := make([]string, len(texts))
		for i, s := range texts {
			out[i] = "T:" + s
		}
		return strings.Join(out, "\n"), nil
	}}
	c := NewClient(transport, "Chinese")
	c.sleep = noSleep

	inputPath := writeTempSRT(t, sampleSRT)
	outputPath := filepath.Join(t.TempDir(), "output.srt")
	err := c.TranslateFile(context.Background(), inputPath, outputPath, Options{BatchSize: 2, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	segments, err := srt.Load(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"T:hello", "T:world", "[PARSE ERROR] goodbye"}
	for i, seg := range segments {
		if seg.Text() != want[i] {
			t.Errorf("segment %d = %q, want %q", i, seg.Text(), want[i])
		}
	}
}
