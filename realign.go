package doctrans

import "strings"

// Realign reconciles the raw line-oriented service response against the
// expected segment count. The response is split on newlines; a short response
// is padded with empty strings at the end, a long one is truncated from the
// front. The returned slice always has exactly expected entries, which the
// pipeline relies on for 1:1 positional write-back.
//
// Both repairs are deliberately lossy: missing tail segments become empty
// translations and excess lines are discarded, so a document always finishes
// processing even under an imperfect service response. Use StrictRealign to
// observe mismatches.
func Realign(raw string, expected int) []string {
	var lines []string
	if raw != "" {
		lines = strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	}
	return RealignSlice(lines, expected)
}

// RealignSlice pads or truncates an already-split candidate sequence to
// exactly expected entries, using the same policy as Realign.
func RealignSlice(lines []string, expected int) []string {
	if expected <= 0 {
		return []string{}
	}
	out := make([]string, expected)
	n := copy(out, lines)
	for i := n; i < expected; i++ {
		out[i] = ""
	}
	return out
}

// StrictRealign behaves like Realign but additionally reports the mismatch as
// a *CountMismatchError when the response line count differs from expected.
// The repaired slice is returned either way.
func StrictRealign(raw string, expected int) ([]string, error) {
	var lines []string
	if raw != "" {
		lines = strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	}
	out := RealignSlice(lines, expected)
	if len(lines) != expected {
		return out, &CountMismatchError{Expected: expected, Got: len(lines)}
	}
	return out, nil
}
