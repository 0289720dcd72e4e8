package schedule

import (
	"regexp"
	"strings"
	"time"
)

// WeeklySchedule открытые интервалы по дням недели, индекс 0=понедельник .. 6=воскресенье
// Интервалы каждого дня отсортированы и не касаются друг друга
type WeeklySchedule [7][]Interval

// DayTokens двухбуквенные обозначения дней, порядок ISO (с понедельника)
var DayTokens = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

var (
	segmentSeparator = regexp.MustCompile(`[\n;]`)
	dayRangePattern  = regexp.MustCompile(`\b(Mo|Di|Mi|Do|Fr|Sa|So)\b\.?\s*(?:[–-]|bis)\s*\b(Mo|Di|Mi|Do|Fr|Sa|So)\b`)
	dayTokenPattern  = regexp.MustCompile(`\b(Mo|Di|Mi|Do|Fr|Sa|So)\b`)
)

// ParseHours разбирает текстовое описание часов работы
//
// Текст состоит из сегментов, разделённых переводом строки или ';'. Сегмент может начинаться
// со списка дней ("Mo, Di" или "Mo–Fr", диапазон оборачивается через конец недели), за которым
// идут один или несколько диапазонов времени. Сегмент без дней применяется ко всем дням.
// Распознаются только двухбуквенные обозначения из DayTokens: полные названия вроде
// "Montag 12:00-14:00" не дают ни одного дня, и такой сегмент действует всю неделю.
// Некорректные диапазоны пропускаются. Пустой или нераспознанный текст даёт пустое расписание.
func ParseHours(raw string) WeeklySchedule {
	var collected [7][]Interval

	for _, segment := range segmentSeparator.Split(raw, -1) {
		matches := rangePattern.FindAllStringSubmatchIndex(segment, -1)
		if len(matches) == 0 {
			continue
		}

		days := parseDays(segment[:matches[0][0]])

		for _, loc := range matches {
			match := make([]string, 5)
			for g := 0; g < 5; g++ {
				match[g] = segment[loc[2*g]:loc[2*g+1]]
			}
			interval, ok := parseRange(match)
			if !ok {
				continue
			}
			for day, included := range days {
				if included {
					collected[day] = append(collected[day], interval)
				}
			}
		}
	}

	var schedule WeeklySchedule
	for day := range collected {
		schedule[day] = mergeIntervals(collected[day])
	}
	return schedule
}

// parseDays разбирает префикс сегмента. Без дней возвращает все семь
func parseDays(prefix string) [7]bool {
	var days [7]bool
	found := false

	for _, m := range dayRangePattern.FindAllStringSubmatch(prefix, -1) {
		from, to := dayIndex(m[1]), dayIndex(m[2])
		for d := from; ; d = (d + 1) % 7 {
			days[d] = true
			if d == to {
				break
			}
		}
		found = true
	}

	rest := dayRangePattern.ReplaceAllString(prefix, " ")
	for _, m := range dayTokenPattern.FindAllStringSubmatch(rest, -1) {
		days[dayIndex(m[1])] = true
		found = true
	}

	if !found {
		for d := range days {
			days[d] = true
		}
	}
	return days
}

func dayIndex(token string) int {
	for i, t := range DayTokens {
		if t == token {
			return i
		}
	}
	return -1
}

// IsEmpty возвращает true, если ни в один день нет открытых интервалов
func (s WeeklySchedule) IsEmpty() bool {
	for _, day := range s {
		if len(day) > 0 {
			return false
		}
	}
	return true
}

// ForDate возвращает интервалы дня недели, на который приходится дата
func (s WeeklySchedule) ForDate(date time.Time) []Interval {
	return s[weekdayIndex(date.Weekday())]
}

// Equal сравнивает расписания по содержимому
func (s WeeklySchedule) Equal(other WeeklySchedule) bool {
	for day := range s {
		if len(s[day]) != len(other[day]) {
			return false
		}
		for i := range s[day] {
			if s[day][i] != other[day][i] {
				return false
			}
		}
	}
	return true
}

// String каноническое представление, которое ParseHours разбирает обратно в то же расписание
// Дни с одинаковыми интервалами группируются, подряд идущие дни сворачиваются в диапазон
func (s WeeklySchedule) String() string {
	var lines []string
	var done [7]bool

	for day := range s {
		if done[day] || len(s[day]) == 0 {
			continue
		}

		var group []int
		for other := day; other < 7; other++ {
			if !done[other] && sameIntervals(s[day], s[other]) {
				group = append(group, other)
				done[other] = true
			}
		}

		ranges := make([]string, len(s[day]))
		for i, interval := range s[day] {
			ranges[i] = interval.String()
		}
		lines = append(lines, formatDays(group)+" "+strings.Join(ranges, ", "))
	}

	return strings.Join(lines, "\n")
}

func sameIntervals(a, b []Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// formatDays список дней, отсортированный по возрастанию, в виде "Mo-Mi, Fr"
func formatDays(days []int) string {
	var parts []string
	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && days[j+1] == days[j]+1 {
			j++
		}
		switch {
		case j-i >= 2:
			parts = append(parts, DayTokens[days[i]]+"-"+DayTokens[days[j]])
		case j-i == 1:
			parts = append(parts, DayTokens[days[i]], DayTokens[days[j]])
		default:
			parts = append(parts, DayTokens[days[i]])
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
