package schedule

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/pkg/types"
)

// FallbackInterval часы, которые используются, если расписание бизнеса пустое
var FallbackInterval = Interval{Start: domain.FallbackOpenMinutes, End: domain.FallbackCloseMinutes}

// OpenIntervals возвращает открытые интервалы на дату с учётом fallback
// Fallback применяется только к полностью пустому расписанию, выходной день остаётся выходным
func OpenIntervals(date time.Time, s WeeklySchedule) []Interval {
	if s.IsEmpty() {
		return []Interval{FallbackInterval}
	}
	return s.ForDate(date)
}

// Generate возвращает упорядоченные времена начала слотов на дату
//
// Каждый открытый интервал проходится от начала с шагом intervalMinutes, пока m < End.
// Слот, начало которого попадает в перерыв, пропускается. Порядок интервалов сохраняется.
func Generate(date time.Time, s WeeklySchedule, breaks BreakSet, intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}

	slots := make([]types.TimeString, 0)
	for _, interval := range OpenIntervals(date, s) {
		for m := interval.Start; m < interval.End; m += intervalMinutes {
			if breaks.Contains(m) {
				continue
			}
			slot, err := types.FromMinutes(m)
			if err != nil {
				// m < End <= 1440, сюда попасть нельзя
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// Contains проверяет, что время является одним из слотов
func Contains(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
