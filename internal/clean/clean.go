// Package clean filters raw machine-transcribed subtitles: SDH tags, HTML
// markup, recognizer hallucinations, and consecutive duplicate cues.
package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kinosub/kinosub/internal/logger"
	"github.com/kinosub/kinosub/internal/srt"
)

var (
	htmlTags   = regexp.MustCompile(`<[^>]+>`)
	brackets   = regexp.MustCompile(`\[.*?\]`)
	starred    = regexp.MustCompile(`\*.*?\*`)
	musicNotes = regexp.MustCompile(`[♪♫♬]`)
	whitespace = regexp.MustCompile(`\s+`)
	// Parenthesized all-caps is a sound description, not dialog.
	parenCaps = regexp.MustCompile(`\([A-Z\s]+\)`)
	punctOnly = regexp.MustCompile(`^[^\p{L}\p{N}\s]+$`)
)

// hallucinationMarkers are substrings whisper-style models invent around
// silence. A line containing one is dropped entirely.
var hallucinationMarkers = []string{
	"subtitle by",
	"subtitles by",
	"translated by",
	"amara.org",
	"captioning by",
	"www.",
	".com",
	"sync and corrections by",
}

// Text cleans one cue's text: tags and sound descriptions removed,
// whitespace collapsed. A hallucinated line comes back empty.
func Text(text string) string {
	text = htmlTags.ReplaceAllString(text, "")
	text = brackets.ReplaceAllString(text, "")
	text = parenCaps.ReplaceAllString(text, "")
	text = starred.ReplaceAllString(text, "")
	text = musicNotes.ReplaceAllString(text, "")

	lower := strings.ToLower(text)
	for _, marker := range hallucinationMarkers {
		if strings.Contains(lower, marker) {
			return ""
		}
	}

	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// IsGarbage reports whether a cleaned line should be removed completely.
func IsGarbage(text string) bool {
	if text == "" {
		return true
	}
	return punctOnly.MatchString(text)
}

// MergeDuplicates merges consecutive cues with identical text by extending
// the earlier cue's end time.
func MergeDuplicates(segments []srt.Segment) []srt.Segment {
	if len(segments) == 0 {
		return nil
	}
	merged := []srt.Segment{segments[0]}
	for _, current := range segments[1:] {
		last := &merged[len(merged)-1]
		if strings.TrimSpace(current.Text()) == strings.TrimSpace(last.Text()) {
			last.EndAt = current.EndAt
		} else {
			merged = append(merged, current)
		}
	}
	return merged
}

// Segments runs the full cleaning pass: per-cue text cleaning, garbage
// filtering, duplicate merging, dense reindex.
func Segments(segments []srt.Segment) []srt.Segment {
	var cleaned []srt.Segment
	for _, seg := range segments {
		text := Text(seg.FlatText())
		if IsGarbage(text) {
			continue
		}
		seg.SetText(text)
		cleaned = append(cleaned, seg)
	}
	return srt.Reindex(MergeDuplicates(cleaned))
}

// File cleans a subtitle file. outputPath may equal inputPath.
func File(inputPath, outputPath string) error {
	segments, err := srt.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}
	original := len(segments)
	cleaned := Segments(segments)
	logger.Info("Cleaned subtitles", "before", original, "after", len(cleaned))
	return srt.Save(outputPath, cleaned)
}
