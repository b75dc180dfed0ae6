package extract

import "strings"

// Excerpt returns at most limit characters of text for the synthesis prompt.
// The cut lands on the last whitespace boundary before the limit so the
// excerpt never ends mid-word.
func Excerpt(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
