package agent

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, so weekday arithmetic is easy to follow in the cases below.
var dateRef = time.Date(2026, time.January, 5, 10, 30, 0, 0, time.UTC)

func TestParseDateKeywords(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"today", "2026-01-05"},
		{"danas", "2026-01-05"},
		{"Tomorrow", "2026-01-06"},
		{"sutra", "2026-01-06"},
		{"day after tomorrow", "2026-01-07"},
		{"prekosutra", "2026-01-07"},
	}
	for _, tc := range cases {
		got, err := ParseDateString(tc.input, dateRef)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseDateRelative(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"in 3 days", "2026-01-08"},
		{"in 1 day", "2026-01-06"},
		{"in a week", "2026-01-12"},
		{"in 2 weeks", "2026-01-19"},
	}
	for _, tc := range cases {
		got, err := ParseDateString(tc.input, dateRef)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseDateWeekdays(t *testing.T) {
	// Reference is Monday 2026-01-05.
	cases := []struct {
		input string
		want  string
	}{
		{"friday", "2026-01-09"},
		{"next friday", "2026-01-09"},
		// A bare weekday naming today resolves to today...
		{"monday", "2026-01-05"},
		// ...but "next" always skips into the following week.
		{"next monday", "2026-01-12"},
		{"sunday", "2026-01-11"},
	}
	for _, tc := range cases {
		got, err := ParseDateString(tc.input, dateRef)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseDateAbsoluteFormats(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-02-14", "2026-02-14"},
		{"2026/02/14", "2026-02-14"},
		{"14/02/2026", "2026-02-14"},
		{"14.02.2026", "2026-02-14"},
	}
	for _, tc := range cases {
		got, err := ParseDateString(tc.input, dateRef)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseDateUnparseable(t *testing.T) {
	for _, input := range []string{"someday", "the 32nd", "", "ne znam"} {
		_, err := ParseDate(input, dateRef)
		require.Error(t, err, input)

		var perr *UnparseableDateError
		require.True(t, errors.As(err, &perr), input)
		assert.Equal(t, input, perr.Input)
	}
}

func TestParseDatePreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Zagreb")
	require.NoError(t, err)

	ref := time.Date(2026, time.January, 5, 23, 30, 0, 0, loc)
	got, err := ParseDate("tomorrow", ref)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", got.Format(CanonicalDateLayout))
	assert.Equal(t, loc, got.Location())
}
