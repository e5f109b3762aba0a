package srt

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapLines splits any single-line segment longer than maxGraphemes into two
// lines at the word boundary nearest the midpoint. maxGraphemes <= 0 disables
// wrapping. Grapheme clusters, not bytes, decide length so CJK and combining
// sequences are measured the way a player renders them.
func WrapLines(segments []Segment, maxGraphemes int) []Segment {
	if maxGraphemes <= 0 {
		return segments
	}
	for i, seg := range segments {
		if len(seg.Lines) != 1 {
			continue
		}
		line := seg.Lines[0]
		if uniseg.GraphemeClusterCount(line) <= maxGraphemes {
			continue
		}
		first, second := splitNearMidpoint(line)
		if second == "" {
			continue
		}
		segments[i].Lines = []string{first, second}
	}
	return segments
}

// splitNearMidpoint breaks at the space closest to the grapheme midpoint.
// Lines without spaces (common in CJK) break at the midpoint cluster itself.
func splitNearMidpoint(line string) (string, string) {
	total := uniseg.GraphemeClusterCount(line)
	mid := total / 2

	if strings.Contains(line, " ") {
		bestIdx := -1
		bestDist := total
		count := 0
		g := uniseg.NewGraphemes(line)
		byteOff := 0
		for g.Next() {
			cluster := g.Str()
			if cluster == " " {
				dist := count - mid
				if dist < 0 {
					dist = -dist
				}
				if dist < bestDist {
					bestDist = dist
					bestIdx = byteOff
				}
			}
			byteOff += len(cluster)
			count++
		}
		if bestIdx <= 0 {
			return line, ""
		}
		return strings.TrimSpace(line[:bestIdx]), strings.TrimSpace(line[bestIdx:])
	}

	count := 0
	byteOff := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		if count == mid {
			break
		}
		byteOff += len(g.Str())
		count++
	}
	if byteOff == 0 || byteOff >= len(line) {
		return line, ""
	}
	return line[:byteOff], line[byteOff:]
}
