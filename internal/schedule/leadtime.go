package schedule

import (
	"time"

	"github.com/m04kA/termine-direkt/pkg/types"
)

// IsTooSoon возвращает true, если слот на сегодняшнюю дату начинается раньше now+bufferMinutes
// Для любой другой даты всегда false
func IsTooSoon(slot types.TimeString, selectedDate, now time.Time, bufferMinutes int) bool {
	if !IsSameDay(selectedDate, now) {
		return false
	}
	earliest := now.Hour()*60 + now.Minute() + bufferMinutes
	return slot.Minutes() < earliest
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
