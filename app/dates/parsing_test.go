package dates

import (
	"testing"
	"time"
)

func TestParseKnownLayouts(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2023-01-15", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2023-01-15 08:30:00", time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"01/15/2023", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"1/5/2023", time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"Jan 15, 2023", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"20230115", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"  2023-01-15  ", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.input)
		if !ok {
			t.Errorf("Parse(%q) failed, want %v", tc.input, tc.want)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "N/A", "not a date", "2023-13-45"} {
		if got, ok := Parse(input); ok {
			t.Errorf("Parse(%q) = %v, expected failure", input, got)
		}
	}
}
