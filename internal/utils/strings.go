package utils

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxStringLength is the truncation length used when a caller passes
// a non-positive limit.
const DefaultMaxStringLength = 500

// TruncateString shortens s to at most maxLen bytes, appending a suffix that
// records the original total length so callers know data was omitted. The cut
// never splits a UTF-8 sequence.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}

	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], len(s))
}
