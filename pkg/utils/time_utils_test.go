package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo24Hour(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"morning am", "9:00 AM", "09:00"},
		{"afternoon pm", "2:30 PM", "14:30"},
		{"lowercase", "2:30 pm", "14:30"},
		{"no space", "2:30PM", "14:30"},
		{"midnight", "12:00 AM", "00:00"},
		{"noon", "12:00 PM", "12:00"},
		{"already 24h", "14:00", "14:00"},
		{"24h single digit hour", "9:15", "09:15"},
		{"unparseable passes through", "around noon", "around noon"},
		{"empty", "", ""},
		{"whitespace trimmed", "  10:00  ", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConvertTo24Hour(tc.in))
		})
	}
}

func TestConvertTo24HourIdempotent(t *testing.T) {
	inputs := []string{"9:00 AM", "2:30 PM", "14:00", "12:00 AM", "around noon", ""}

	for _, in := range inputs {
		once := ConvertTo24Hour(in)
		twice := ConvertTo24Hour(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	assert.Equal(t, "2026-06-15", FormatDate(&parsed))
	assert.Equal(t, "", FormatDate(nil))

	var zero time.Time
	assert.Equal(t, "", FormatDate(&zero))

	_, err = ParseDate("15/06/2026")
	assert.Error(t, err)
}

func TestPlanDayCount(t *testing.T) {
	start, _ := ParseDate("2026-06-15")
	end, _ := ParseDate("2026-06-16")

	assert.Equal(t, 2, PlanDayCount(start, end))
	assert.Equal(t, 1, PlanDayCount(start, start))
	assert.Equal(t, 1, PlanDayCount(end, start))

	weekEnd, _ := ParseDate("2026-06-21")
	assert.Equal(t, 7, PlanDayCount(start, weekEnd))
}
