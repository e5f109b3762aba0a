// Package srt is the segment store: an ordered sequence of timed subtitle
// cues loaded from and serialized to standard subtitle formats.
package srt

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
	"github.com/kinosub/kinosub/internal/files"
)

// Segment is a single subtitle cue. Index is the 1-based sequence position
// and is re-assigned densely whenever the sequence is rewritten.
type Segment struct {
	Index   int
	StartAt time.Duration
	EndAt   time.Duration
	Lines   []string
}

// Text returns the cue text with embedded newlines between lines.
func (s Segment) Text() string {
	return strings.Join(s.Lines, "\n")
}

// FlatText returns the cue text flattened to a single line.
func (s Segment) FlatText() string {
	return strings.TrimSpace(strings.Join(s.Lines, " "))
}

// SetText replaces the cue text, splitting on embedded newlines.
func (s *Segment) SetText(text string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	s.Lines = lines
}

// Load reads subtitles from a file. The format is detected from the file
// extension (SRT, WebVTT, SSA/ASS, TTML, STL).
func Load(path string) ([]Segment, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	return fromAstisub(subs), nil
}

// Validate checks timestamps and ordering. Empty input is valid: an empty
// file is translated to an empty file, not rejected.
func Validate(segments []Segment) error {
	for i, seg := range segments {
		if seg.EndAt < seg.StartAt {
			return fmt.Errorf("end time is before start time at segment %d (index %d)", i+1, seg.Index)
		}
		if i > 0 && seg.StartAt < segments[i-1].StartAt {
			return fmt.Errorf("segments out of order at position %d (index %d)", i+1, seg.Index)
		}
	}
	return nil
}

// FlatTexts extracts one single-line text per segment, in order. Embedded
// newlines are flattened to spaces so each cue maps to exactly one line in
// the translation request.
func FlatTexts(segments []Segment) []string {
	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.FlatText()
	}
	return texts
}

// Reindex assigns dense 1-based indices in place and returns the slice.
func Reindex(segments []Segment) []Segment {
	for i := range segments {
		segments[i].Index = i + 1
	}
	return segments
}

// Save writes segments to path, choosing the format by extension and
// re-assigning dense indices. The write is atomic and UTF-8 encoded.
func Save(path string, segments []Segment) error {
	// astisub refuses to serialize an empty set; an empty input still
	// produces an (empty) output file.
	if len(segments) == 0 {
		return files.AtomicWrite(path, nil, 0o644)
	}

	Reindex(segments)
	subs := toAstisub(segments)

	var buf bytes.Buffer
	var writeErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		writeErr = subs.WriteToWebVTT(&buf)
	case ".ssa", ".ass":
		writeErr = subs.WriteToSSA(&buf)
	case ".ttml":
		writeErr = subs.WriteToTTML(&buf)
	default:
		writeErr = subs.WriteToSRT(&buf)
	}
	if writeErr != nil {
		return fmt.Errorf("failed to serialize subtitles: %w", writeErr)
	}

	return files.AtomicWrite(path, buf.Bytes(), 0o644)
}

func fromAstisub(subs *astisub.Subtitles) []Segment {
	segments := make([]Segment, 0, len(subs.Items))
	for i, item := range subs.Items {
		lines := make([]string, 0, len(item.Lines))
		for _, l := range item.Lines {
			lines = append(lines, l.String())
		}
		segments = append(segments, Segment{
			Index:   i + 1,
			StartAt: item.StartAt,
			EndAt:   item.EndAt,
			Lines:   lines,
		})
	}
	return segments
}

func toAstisub(segments []Segment) *astisub.Subtitles {
	subs := astisub.NewSubtitles()
	for _, seg := range segments {
		item := &astisub.Item{
			Index:   seg.Index,
			StartAt: seg.StartAt,
			EndAt:   seg.EndAt,
		}
		for _, line := range seg.Lines {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: line}},
			})
		}
		subs.Items = append(subs.Items, item)
	}
	return subs
}
