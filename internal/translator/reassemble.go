package translator

import (
	"sort"

	"github.com/kinosub/kinosub/internal/srt"
)

// Reassemble merges per-batch results back into the segments. Iterating the
// start offsets in ascending order recovers the original global order because
// offsets are the 0-based positions assigned at batch creation. Only the text
// changes; indices and timecodes stay untouched. Segments beyond the
// available translated length are left unmodified.
func Reassemble(segments []srt.Segment, results map[int][]string) []srt.Segment {
	starts := make([]int, 0, len(results))
	for start := range results {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	var flat []string
	for _, start := range starts {
		flat = append(flat, results[start]...)
	}

	for i := range segments {
		if i < len(flat) {
			segments[i].SetText(flat[i])
		}
	}
	return segments
}
