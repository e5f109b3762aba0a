package translator

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt([]string{"hello", "world"}, "Korean")

	for _, want := range []string{
		"Translate the following 2 subtitle segments into Korean.",
		"Output exactly 2 lines",
		"[1] hello",
		"[2] world",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptNumbersSequentially(t *testing.T) {
	texts := []string{"a", "b", "c"}
	prompt := buildPrompt(texts, "Chinese")

	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	tail := lines[len(lines)-len(texts):]
	want := []string{"[1] a", "[2] b", "[3] c"}
	for i, line := range tail {
		if line != want[i] {
			t.Errorf("numbered line %d = %q, want %q", i, line, want[i])
		}
	}
}
