// Package language guesses the language of subtitle text, used to warn when
// a file already appears to be in the target language.
package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// detectSampleSize caps how many cues feed the detector; a few dozen lines
// are plenty for a confident guess.
const detectSampleSize = 40

// DetectName returns the English name of the dominant language of the given
// texts ("English", "Mandarin", ...). ok is false when the detector is not
// confident.
func DetectName(texts []string) (name string, ok bool) {
	sample := texts
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}
	joined := strings.TrimSpace(strings.Join(sample, " "))
	if joined == "" {
		return "", false
	}
	info := whatlanggo.Detect(joined)
	if !info.IsReliable() {
		return "", false
	}
	return info.Lang.String(), true
}

// Matches reports whether a detected language name refers to the same
// language as a free-form target name, tolerating the Chinese/Mandarin split.
func Matches(detected, target string) bool {
	d := strings.ToLower(strings.TrimSpace(detected))
	t := strings.ToLower(strings.TrimSpace(target))
	if d == "" || t == "" {
		return false
	}
	if d == t || strings.Contains(t, d) || strings.Contains(d, t) {
		return true
	}
	chinese := map[string]bool{"mandarin": true, "chinese": true}
	return chinese[d] && chinese[strings.Fields(t)[0]]
}
