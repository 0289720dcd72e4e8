package capacity

import (
	"context"
	"time"

	"github.com/m04kA/termine-direkt/pkg/types"
)

// ReservationCounter источник живых счётчиков бронирований
type ReservationCounter interface {
	CountForSlot(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) (int, error)
	SlotOrdinals(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) ([]int, error)
	CountsByTime(ctx context.Context, businessID int64, date time.Time) (map[types.TimeString]int, error)
}
