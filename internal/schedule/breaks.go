package schedule

import "strings"

// BreakSet перерывы, общие для всех дней. Не сортируется и не склеивается,
// пересекающиеся перерывы проверяются независимо
type BreakSet []Interval

// ParseBreaks разбирает перерывы вида "14:00-15:00, 18:30–19:00"
// Нераспознанные элементы пропускаются
func ParseBreaks(raw string) BreakSet {
	var breaks BreakSet
	for _, item := range strings.Split(raw, ",") {
		match := rangePattern.FindStringSubmatch(item)
		if match == nil {
			continue
		}
		interval, ok := parseRange(match)
		if !ok {
			continue
		}
		breaks = append(breaks, interval)
	}
	return breaks
}

// Contains возвращает true, если минута m попадает хотя бы в один перерыв
func (b BreakSet) Contains(m int) bool {
	for _, interval := range b {
		if interval.Contains(m) {
			return true
		}
	}
	return false
}

func (b BreakSet) String() string {
	parts := make([]string, len(b))
	for i, interval := range b {
		parts[i] = interval.String()
	}
	return strings.Join(parts, ", ")
}
