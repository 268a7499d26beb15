package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	meridiemRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)
	clock24Re    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	hourOnlyRe   = regexp.MustCompile(`^(\d{1,2})$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseTime normalizes a free-form time expression to zero-padded 24-hour
// "HH:MM". Recognized forms, first match wins: 12-hour with meridiem
// ("7pm", "7:30 pm"), 24-hour "H:MM"/"HH:MM", bare hour ("19" means 19:00).
func ParseTime(text string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = whitespaceRe.ReplaceAllString(normalized, "")

	if m := meridiemRe.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return "", &UnparseableTimeError{Input: text}
		}
		if m[3] == "am" {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	if m := clock24Re.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return "", &UnparseableTimeError{Input: text}
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	if m := hourOnlyRe.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			return "", &UnparseableTimeError{Input: text}
		}
		return fmt.Sprintf("%02d:00", hour), nil
	}

	return "", &UnparseableTimeError{Input: text}
}
