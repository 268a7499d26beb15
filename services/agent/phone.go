package agent

import (
	"strings"
	"unicode"
)

// Spoken digit words mapped to digits. "oh" and a bare "o" are common in
// dictated phone numbers.
var phoneWordDigits = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"oh": "0", "o": "0",
}

// NormalizePhone converts a spoken or punctuated phone number to plain
// digits, preserving a leading "+". Examples: "plus 385 91 123 4567" becomes
// "+385911234567", "091-123-4567" becomes "0911234567".
func NormalizePhone(raw string) string {
	if raw == "" {
		return raw
	}

	lowered := strings.ToLower(strings.TrimSpace(raw))
	hasPlus := strings.HasPrefix(lowered, "+") || strings.Contains(lowered, "plus")

	words := strings.Fields(lowered)
	for i, w := range words {
		if digit, ok := phoneWordDigits[w]; ok {
			words[i] = digit
		}
	}
	joined := strings.Join(words, " ")

	var sb strings.Builder
	for _, r := range joined {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if digits == "" {
		return raw
	}
	if hasPlus {
		return "+" + digits
	}
	return digits
}
