package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/termine-direkt/pkg/types"
)

// Ledger отвечает на вопрос "сколько бронирований в слоте и заполнен ли он"
// Счётчики всегда читаются из хранилища и не кэшируются между запросами
type Ledger struct {
	counter ReservationCounter
}

// NewLedger создает новый экземпляр Ledger
func NewLedger(counter ReservationCounter) *Ledger {
	return &Ledger{counter: counter}
}

// CountFor возвращает количество бронирований на точное время слота
func (l *Ledger) CountFor(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) (int, error) {
	count, err := l.counter.CountForSlot(ctx, businessID, date, slot)
	if err != nil {
		return 0, fmt.Errorf("%w: business=%d slot=%s %s: %w", ErrCount, businessID, date.Format("2006-01-02"), slot, err)
	}
	return count, nil
}

// CountsByTime возвращает количество бронирований по каждому времени на дату
func (l *Ledger) CountsByTime(ctx context.Context, businessID int64, date time.Time) (map[types.TimeString]int, error) {
	counts, err := l.counter.CountsByTime(ctx, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: business=%d date=%s: %w", ErrCount, businessID, date.Format("2006-01-02"), err)
	}
	return counts, nil
}

// IsFull возвращает true, если count >= capacity
func (l *Ledger) IsFull(ctx context.Context, businessID int64, date time.Time, slot types.TimeString, capacity int) (bool, error) {
	count, err := l.CountFor(ctx, businessID, date, slot)
	if err != nil {
		return false, err
	}
	return count >= capacity, nil
}

// NextOrdinal возвращает наименьший свободный порядковый номер в [1, capacity]
// 0 означает, что свободных номеров нет
func (l *Ledger) NextOrdinal(ctx context.Context, businessID int64, date time.Time, slot types.TimeString, capacity int) (int, error) {
	ordinals, err := l.counter.SlotOrdinals(ctx, businessID, date, slot)
	if err != nil {
		return 0, fmt.Errorf("%w: ordinals business=%d slot=%s %s: %w", ErrCount, businessID, date.Format("2006-01-02"), slot, err)
	}
	return FirstFreeOrdinal(ordinals, capacity), nil
}

// FirstFreeOrdinal наименьший номер из [1, capacity], которого нет в taken
func FirstFreeOrdinal(taken []int, capacity int) int {
	used := make(map[int]struct{}, len(taken))
	for _, ordinal := range taken {
		used[ordinal] = struct{}{}
	}
	for ordinal := 1; ordinal <= capacity; ordinal++ {
		if _, ok := used[ordinal]; !ok {
			return ordinal
		}
	}
	return 0
}
