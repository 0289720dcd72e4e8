package domain

// Slot generation defaults
const (
	DefaultSlotIntervalMinutes = 45
	DefaultLeadTimeMinutes     = 120
	DefaultAdvanceBookingDays  = 0 // 0 = unlimited

	// Used when a business's hours text yields no usable schedule
	FallbackOpenMinutes  = 12 * 60
	FallbackCloseMinutes = 20 * 60
)

// Slot capacity policy
const (
	DefaultSlotCapacity = 3
	MinSlotCapacity     = 1
	MaxSlotCapacity     = 3
)

// Business validation constants
const (
	MaxGuestNameLength = 200
	MaxNoteLength      = 500
	MaxServiceLength   = 200
	MaxHoursTextLength = 2000
	MaxPartySize       = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
