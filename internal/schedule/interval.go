package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

const minutesPerDay = 24 * 60

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// Contains возвращает true, если минута m попадает в интервал
func (i Interval) Contains(m int) bool {
	return i.Start <= m && m < i.End
}

func (i Interval) String() string {
	return formatMinutes(i.Start) + "-" + formatMinutes(i.End)
}

// rangePattern диапазон времени "H:MM-H:MM" или "H:MM–H:MM"
var rangePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[–-]\s*(\d{1,2}):(\d{2})`)

// parseRange разбирает найденный rangePattern. ok=false для некорректного диапазона
func parseRange(match []string) (Interval, bool) {
	start, ok := toMinutes(match[1], match[2])
	if !ok {
		return Interval{}, false
	}
	end, ok := toMinutes(match[3], match[4])
	if !ok {
		return Interval{}, false
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

func toMinutes(hourStr, minuteStr string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute > 59 {
		return 0, false
	}
	total := hour*60 + minute
	if total > minutesPerDay {
		return 0, false
	}
	return total, true
}

// mergeIntervals сортирует интервалы по началу и склеивает касающиеся и пересекающиеся
func mergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Start == sorted[b].Start {
			return sorted[a].End < sorted[b].End
		}
		return sorted[a].Start < sorted[b].Start
	})

	merged := []Interval{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if next.Start <= last.End {
			if next.End > last.End {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}

	return merged
}

// formatMinutes минуты от полуночи в "HH:MM". 1440 выводится как "24:00"
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// weekdayIndex переводит time.Weekday в индекс недели с понедельника (Monday=0..Sunday=6)
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
