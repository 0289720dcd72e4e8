package get_available_slots

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/schedule"
	"github.com/m04kA/termine-direkt/pkg/types"
)

// annotateSlots дополняет сгенерированные слоты занятостью и флагом tooSoon
// Слоты не выбрасываются: клиент сам решает, скрыть или заблокировать полный/близкий слот
func annotateSlots(
	times []types.TimeString,
	counts map[types.TimeString]int,
	capacity int,
	requestDate time.Time,
	now time.Time,
	leadTimeMinutes int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(times))

	for i, slotTime := range times {
		booked := counts[slotTime]
		result[i] = domain.AvailableSlot{
			Time:     slotTime,
			Booked:   booked,
			Capacity: capacity,
			Full:     booked >= capacity,
			TooSoon:  schedule.IsTooSoon(slotTime, requestDate, now, leadTimeMinutes),
		}
	}

	return result
}
