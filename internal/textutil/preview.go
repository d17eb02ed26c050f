package textutil

import "strings"

const ellipsis = "..."

// Preview shortens text to at most limit runes for single-line displays.
// Line breaks collapse to spaces and an ellipsis marks truncation. A limit
// of zero or less returns the collapsed text unchanged.
func Preview(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if limit <= 0 {
		return collapsed
	}
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return strings.TrimRight(string(runes[:limit]), " ") + ellipsis
}
