package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	utc := func(y int, mo time.Month, d, h, mi, s int) time.Time {
		return time.Date(y, mo, d, h, mi, s, 0, time.UTC)
	}

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			// Brazilian vendor rendering with a timezone abbreviation.
			name:  "day first with BRST abbreviation",
			input: "31/12/2023 23:59:59 BRST",
			want:  utc(2024, time.January, 1, 2, 59, 59),
		},
		{
			// Month-first only fits when the day-first reading is invalid.
			name:  "month first fallback",
			input: "12/31/2023 23:59:59",
			want:  utc(2024, time.January, 1, 2, 59, 59),
		},
		{
			name:  "iso datetime",
			input: "2023-12-31 23:59:59",
			want:  utc(2024, time.January, 1, 2, 59, 59),
		},
		{
			name:  "ambiguous date reads day first",
			input: "05/04/2023 12:00:00",
			want:  utc(2023, time.April, 5, 15, 0, 0),
		},
		{
			name:  "fractional seconds",
			input: "31/12/2023 23:59:59.500000",
			want:  time.Date(2024, time.January, 1, 2, 59, 59, 500_000_000, time.UTC),
		},
		{
			name:  "utc abbreviation",
			input: "2023-12-31 20:00:00 UTC",
			want:  utc(2023, time.December, 31, 20, 0, 0),
		},
		{
			name:  "embedded offset wins",
			input: "31/12/2023 23:59:59-02:00",
			want:  utc(2024, time.January, 1, 1, 59, 59),
		},
		{
			name:  "unknown abbreviation stripped, default zone applies",
			input: "31/12/2023 23:59:59 XYZT",
			want:  utc(2024, time.January, 1, 2, 59, 59),
		},
		{
			name:  "sast abbreviation",
			input: "01/06/2023 10:00:00 SAST",
			want:  utc(2023, time.June, 1, 8, 0, 0),
		},
		{
			name:  "date only localizes at midnight",
			input: "31/12/2023",
			want:  utc(2023, time.December, 31, 3, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"not-a-date",
		"32/13/2023 10:00:00",
		"2023-31-12 10:00:00",
	} {
		assert.Nil(t, ParseTimestamp(input), "input %q", input)
	}
}

func TestParseTimestampIsDeterministic(t *testing.T) {
	a := ParseTimestamp("31/12/2023 23:59:59 BRST")
	b := ParseTimestamp("31/12/2023 23:59:59 BRST")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.True(t, a.Equal(*b))
}
