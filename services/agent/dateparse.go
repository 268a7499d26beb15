package agent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the wire format for reservation dates.
const CanonicalDateLayout = "2006-01-02"

// Absolute formats tried in order after keyword and relative matching.
var absoluteDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02.01.2006",
}

// Literal keywords, English and Croatian accepted as synonyms.
var literalDateOffsets = map[string]int{
	"today":              0,
	"danas":              0,
	"tomorrow":           1,
	"sutra":              1,
	"day after tomorrow": 2,
	"prekosutra":         2,
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	inDaysRe  = regexp.MustCompile(`^in (\d+) days?$`)
	inWeeksRe = regexp.MustCompile(`^in (\d+) weeks?$`)
	inAWeekRe = regexp.MustCompile(`^in a week$`)
)

// ParseDate normalizes a free-form date expression to a calendar date.
// Recognized forms, first match wins: literal keywords ("tomorrow", "sutra"),
// relative offsets ("in 3 days", "in a week"), weekday names ("next friday",
// "friday"), then absolute formats. On failure it returns an
// UnparseableDateError carrying the original text.
func ParseDate(text string, reference time.Time) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	ref := truncateToDate(reference)

	if offset, ok := literalDateOffsets[normalized]; ok {
		return ref.AddDate(0, 0, offset), nil
	}

	if m := inDaysRe.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		return ref.AddDate(0, 0, n), nil
	}
	if inAWeekRe.MatchString(normalized) {
		return ref.AddDate(0, 0, 7), nil
	}
	if m := inWeeksRe.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		return ref.AddDate(0, 0, 7*n), nil
	}

	// "next friday" always skips today; a bare "friday" counts today as valid.
	if rest, ok := strings.CutPrefix(normalized, "next "); ok {
		if wd, ok := weekdayNames[strings.TrimSpace(rest)]; ok {
			offset := int(wd) - int(ref.Weekday())
			if offset <= 0 {
				offset += 7
			}
			return ref.AddDate(0, 0, offset), nil
		}
	}
	if wd, ok := weekdayNames[normalized]; ok {
		offset := int(wd) - int(ref.Weekday())
		if offset < 0 {
			offset += 7
		}
		return ref.AddDate(0, 0, offset), nil
	}

	trimmed := strings.TrimSpace(text)
	for _, layout := range absoluteDateLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, reference.Location()); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, &UnparseableDateError{Input: text}
}

// ParseDateString is ParseDate with canonical YYYY-MM-DD string output.
func ParseDateString(text string, reference time.Time) (string, error) {
	parsed, err := ParseDate(text, reference)
	if err != nil {
		return "", err
	}
	return parsed.Format(CanonicalDateLayout), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
