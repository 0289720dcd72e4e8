package domain

import "github.com/m04kA/termine-direkt/pkg/types"

// AvailableSlot a generated slot annotated with its live occupancy
type AvailableSlot struct {
	Time     types.TimeString
	Booked   int
	Capacity int
	Full     bool
	TooSoon  bool
}

// Remaining returns how many reservations the slot can still take
func (s *AvailableSlot) Remaining() int {
	if s.Booked >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Booked
}

// IsBookable returns true if the slot is neither full nor too soon
func (s *AvailableSlot) IsBookable() bool {
	return !s.Full && !s.TooSoon
}
