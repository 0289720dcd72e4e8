package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end string) Interval {
	return Interval{Start: mustMinutes(start), End: mustMinutes(end)}
}

func mustMinutes(s string) int {
	var h, m int
	for i, part := 0, 0; i < len(s); i++ {
		if s[i] == ':' {
			part++
			continue
		}
		if part == 0 {
			h = h*10 + int(s[i]-'0')
		} else {
			m = m*10 + int(s[i]-'0')
		}
	}
	return h*60 + m
}

func TestParseHours_DayRangeWrapsAcrossWeek(t *testing.T) {
	s := ParseHours("Fr–Mo 12:00–14:00")

	want := []Interval{iv("12:00", "14:00")}
	for _, day := range []int{0, 4, 5, 6} {
		assert.Equal(t, want, s[day], "day %s", DayTokens[day])
	}
	for _, day := range []int{1, 2, 3} {
		assert.Empty(t, s[day], "day %s", DayTokens[day])
	}
}

func TestParseHours_UnscopedSegmentMerges(t *testing.T) {
	s := ParseHours("12:00-15:00, 14:00-18:00")

	for day := 0; day < 7; day++ {
		assert.Equal(t, []Interval{iv("12:00", "18:00")}, s[day])
	}
}

func TestParseHours_FullDayNamesAreNotTokens(t *testing.T) {
	s := ParseHours("Montag 12:00-14:00")

	for day := 0; day < 7; day++ {
		assert.Equal(t, []Interval{iv("12:00", "14:00")}, s[day], "day %s", DayTokens[day])
	}
	assert.Equal(t, "Mo-So 12:00-14:00", s.String())
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[int][]Interval
	}{
		{
			name: "split shift with semicolon segments",
			raw:  "Mo–Fr 12:00–15:00, 17:00–22:00; Sa 12:00–23:00",
			want: map[int][]Interval{
				0: {iv("12:00", "15:00"), iv("17:00", "22:00")},
				1: {iv("12:00", "15:00"), iv("17:00", "22:00")},
				2: {iv("12:00", "15:00"), iv("17:00", "22:00")},
				3: {iv("12:00", "15:00"), iv("17:00", "22:00")},
				4: {iv("12:00", "15:00"), iv("17:00", "22:00")},
				5: {iv("12:00", "23:00")},
			},
		},
		{
			name: "day list and newline segments",
			raw:  "Mo, Mi 9:00-12:00\nDi 10:00 - 11:30",
			want: map[int][]Interval{
				0: {iv("09:00", "12:00")},
				1: {iv("10:00", "11:30")},
				2: {iv("09:00", "12:00")},
			},
		},
		{
			name: "bis range",
			raw:  "Di bis Do 11:00-14:00",
			want: map[int][]Interval{
				1: {iv("11:00", "14:00")},
				2: {iv("11:00", "14:00")},
				3: {iv("11:00", "14:00")},
			},
		},
		{
			name: "touching intervals merge",
			raw:  "So 10:00-12:00, 12:00-13:00",
			want: map[int][]Interval{
				6: {iv("10:00", "13:00")},
			},
		},
		{
			name: "out of order intervals are sorted",
			raw:  "Sa 18:00-22:00, 11:00-14:00",
			want: map[int][]Interval{
				5: {iv("11:00", "14:00"), iv("18:00", "22:00")},
			},
		},
		{
			name: "midnight end is allowed",
			raw:  "Fr 18:00-24:00",
			want: map[int][]Interval{
				4: {{Start: 18 * 60, End: 1440}},
			},
		},
		{
			name: "malformed range dropped alone",
			raw:  "Mo 12:60-13:00, 14:00-15:00; Di 15:00-14:00; Mi 25:00-26:00; Do 8:00-9:00",
			want: map[int][]Interval{
				0: {iv("14:00", "15:00")},
				3: {iv("08:00", "09:00")},
			},
		},
		{
			name: "segment without time range ignored",
			raw:  "So geschlossen; Mo 10:00-11:00",
			want: map[int][]Interval{
				0: {iv("10:00", "11:00")},
			},
		},
		{
			name: "empty text",
			raw:  "",
			want: map[int][]Interval{},
		},
		{
			name: "garbage",
			raw:  "nach Vereinbarung",
			want: map[int][]Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseHours(tt.raw)
			for day := 0; day < 7; day++ {
				if want, ok := tt.want[day]; ok {
					assert.Equal(t, want, s[day], "day %s", DayTokens[day])
				} else {
					assert.Empty(t, s[day], "day %s", DayTokens[day])
				}
			}
		})
	}
}

func TestParseHours_MergeInvariant(t *testing.T) {
	inputs := []string{
		"12:00-15:00, 14:00-18:00",
		"Mo-So 08:00-10:00, 09:00-09:30, 10:00-11:00, 13:00-14:00",
		"Fr–Mo 12:00–14:00; Sa 13:00-20:00; So 07:00-08:00, 07:30-12:00",
	}

	for _, raw := range inputs {
		s := ParseHours(raw)
		for day := range s {
			for i := 1; i < len(s[day]); i++ {
				assert.Less(t, s[day][i-1].End, s[day][i].Start, "%q day %d", raw, day)
			}
			for _, interval := range s[day] {
				assert.Less(t, interval.Start, interval.End)
			}
		}
	}
}

func TestParseHours_EmptyIsEmpty(t *testing.T) {
	assert.True(t, ParseHours("").IsEmpty())
	assert.True(t, ParseHours("Mo 14:00-12:00").IsEmpty())
	assert.False(t, ParseHours("Mo 12:00-14:00").IsEmpty())
}

func TestWeeklySchedule_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"Fr–Mo 12:00–14:00",
		"12:00-15:00, 14:00-18:00",
		"Mo–Fr 12:00–15:00, 17:00–22:00; Sa 12:00–23:00",
		"Mo, Mi, Fr 9:00-12:00\nSa, So 10:00-24:00",
		"Di 8:00-9:00; Do 8:00-9:00",
		"",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			s := ParseHours(raw)
			again := ParseHours(s.String())
			assert.True(t, s.Equal(again), "serialized %q", s.String())
		})
	}
}

func TestWeeklySchedule_String(t *testing.T) {
	s := ParseHours("Mo–Fr 12:00–15:00, 17:00–22:00; Sa 12:00–23:00")
	assert.Equal(t, "Mo-Fr 12:00-15:00, 17:00-22:00\nSa 12:00-23:00", s.String())

	s = ParseHours("Fr–Mo 12:00–14:00")
	assert.Equal(t, "Mo, Fr-So 12:00-14:00", s.String())

	assert.Equal(t, "", ParseHours("").String())
}

func TestParseBreaks(t *testing.T) {
	b := ParseBreaks("14:00-15:00, quatsch, 18:30–19:00, 15:00-14:00, 14:30-15:30")

	require.Len(t, b, 3)
	assert.Equal(t, iv("14:00", "15:00"), b[0])
	assert.Equal(t, iv("18:30", "19:00"), b[1])
	assert.Equal(t, iv("14:30", "15:30"), b[2])

	assert.True(t, b.Contains(mustMinutes("14:00")))
	assert.True(t, b.Contains(mustMinutes("15:15")))
	assert.False(t, b.Contains(mustMinutes("15:30")))
	assert.False(t, b.Contains(mustMinutes("19:00")))

	assert.Empty(t, ParseBreaks(""))
}
