package translator

import (
	"fmt"
	"strings"
)

// buildPrompt builds the single structured request for a batch. The rules
// mirror what the alignment invariant needs from the model: normalize garbled
// ASR repeats instead of translating them literally, return exactly one
// output line per input line in order, and add nothing else.
func buildPrompt(texts []string, targetLang string) string {
	var b strings.Builder
	count := len(texts)

	b.WriteString("You are a professional movie subtitle translator.\n")
	fmt.Fprintf(&b, "Translate the following %d subtitle segments into %s.\n", count, targetLang)
	b.WriteString("**Important Rules:**\n")
	b.WriteString("1. **Fix ASR Errors**: If the source text has repetition (e.g. 'no no no no'), translate it naturally. Ignore hallucinated metadata and nonsense filler.\n")
	fmt.Fprintf(&b, "2. **Strict Alignment**: Output exactly %d lines. Line N must correspond to Input N.\n", count)
	b.WriteString("3. **No Extras**: Do not include explanations, notes, numbering, or the original text.\n\n")

	for i, t := range texts {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, t)
	}
	return b.String()
}
