package doctrans

import "strings"

// BatchSegments slices an ordered segment sequence into contiguous batches of
// at most maxPerBatch segments each. Concatenating the batches in order
// reproduces the input exactly; the last batch may be shorter. An empty input
// yields zero batches. maxPerBatch <= 0 falls back to DefaultMaxPerBatch.
func BatchSegments(segments []string, maxPerBatch int) [][]string {
	if maxPerBatch <= 0 {
		maxPerBatch = DefaultMaxPerBatch
	}

	var batches [][]string
	for i := 0; i < len(segments); i += maxPerBatch {
		end := i + maxPerBatch
		if end > len(segments) {
			end = len(segments)
		}
		batches = append(batches, segments[i:end])
	}
	return batches
}

// SanitizeSegment collapses line breaks inside a segment into single spaces.
// Segments are joined with newlines for transmission and split back on the
// same delimiter, so a segment containing the delimiter would silently corrupt
// realignment.
func SanitizeSegment(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
