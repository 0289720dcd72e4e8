package domain

import (
	"time"

	"github.com/m04kA/termine-direkt/pkg/types"
)

// Reservation a guest booking of one slot
type Reservation struct {
	ID          int64
	BusinessID  int64
	Date        time.Time
	Time        types.TimeString
	SlotOrdinal int // 1..capacity, unique per (business, date, time)

	GuestName  string
	GuestEmail *string
	Phone      *string
	PartySize  *int
	Service    *string
	Note       *string

	CreatedAt time.Time
}

// ReservationFilter selects a business's reservations on one day
type ReservationFilter struct {
	BusinessID int64
	Date       time.Time
}
