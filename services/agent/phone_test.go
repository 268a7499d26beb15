package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"+385 91 123 4567", "+385911234567"},
		{"plus 385 91 123 4567", "+385911234567"},
		{"091-123-4567", "0911234567"},
		{"(091) 123 4567", "0911234567"},
		{"zero nine one one two three", "091123"},
		{"oh nine one", "091"},
		{"plus three eight five nine one", "+38591"},
		{"plus four six", "+46"},
		{"0911234567", "0911234567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.input), tc.input)
	}
}

func TestNormalizePhoneNoDigits(t *testing.T) {
	// Nothing recognizable: the raw input comes back untouched so the
	// conversation can re-ask with the guest's own words.
	assert.Equal(t, "call me whenever", NormalizePhone("call me whenever"))
	assert.Equal(t, "", NormalizePhone(""))
}
