package validators

import "strings"

// SanitizeString trims surrounding whitespace and caps the length of
// client-supplied identifiers.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
