package domain

import (
	"strconv"
	"strings"
	"time"
)

// ServiceType kind of business, drives which guest fields are required
type ServiceType string

const (
	ServiceTypeRestaurant ServiceType = "restaurant"
	ServiceTypeSalon      ServiceType = "friseur"
)

// Business a company that accepts reservations
type Business struct {
	ID          int64
	Slug        string
	Name        string
	Address     string
	Email       string // internal, never echoed to guests
	ServiceType ServiceType

	HoursText string  // free text weekly hours, e.g. "Mo–Fr 12:00–15:00, 17:00–22:00; Sa 12:00–23:00"
	BreakText *string // comma separated break ranges applied to every day

	// Raw configured capacity. Kept unparsed so absent and non-numeric values can be told apart
	SlotCapacity *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Capacity returns the effective per-slot capacity
func (b *Business) Capacity() int {
	return ResolveSlotCapacity(b.SlotCapacity)
}

// IsSalon returns true for hair salons (one guest per booking, service required)
func (b *Business) IsSalon() bool {
	return b.ServiceType == ServiceTypeSalon
}

// Breaks returns the break text or an empty string
func (b *Business) Breaks() string {
	if b.BreakText == nil {
		return ""
	}
	return *b.BreakText
}

// ResolveSlotCapacity applies the capacity policy: absent or non-numeric
// values fall back to DefaultSlotCapacity, the result is clamped to
// [MinSlotCapacity, MaxSlotCapacity].
func ResolveSlotCapacity(raw *string) int {
	if raw == nil {
		return DefaultSlotCapacity
	}
	value, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return DefaultSlotCapacity
	}
	if value < MinSlotCapacity {
		return MinSlotCapacity
	}
	if value > MaxSlotCapacity {
		return MaxSlotCapacity
	}
	return value
}
