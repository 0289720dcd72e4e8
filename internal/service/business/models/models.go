package models

import (
	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/schedule"
)

// UpdateHoursRequest запрос на изменение часов работы, перерывов и вместимости слота
type UpdateHoursRequest struct {
	BusinessID      int64   `json:"-" validate:"gt=0"`
	ActorBusinessID int64   `json:"-"`
	HoursText       string  `json:"hoursText" validate:"max=2000"`
	BreakText       *string `json:"breakText,omitempty" validate:"omitempty,max=500"`
	SlotCapacity    *string `json:"slotCapacity,omitempty" validate:"omitempty,max=10"`
}

// DayHours открытые интервалы одного дня недели
type DayHours struct {
	Day       string   `json:"day"` // "Mo"
	Intervals []string `json:"intervals"`
}

// HoursResponse часы работы бизнеса в исходном и разобранном виде
type HoursResponse struct {
	BusinessID   int64      `json:"businessId"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Address      string     `json:"address,omitempty"`
	ServiceType  string     `json:"serviceType"`
	HoursText    string     `json:"hoursText"`
	BreakText    *string    `json:"breakText,omitempty"`
	SlotCapacity *string    `json:"slotCapacity,omitempty"`
	Capacity     int        `json:"capacity"`     // Действующая вместимость после clamp
	Canonical    string     `json:"canonical"`    // Нормализованный текст часов
	UsesFallback bool       `json:"usesFallback"` // Часы не распознаны, используется 12:00-20:00
	Week         []DayHours `json:"week"`
	Breaks       []string   `json:"breaks"`
}

// FromDomainBusiness конвертирует бизнес и разобранное расписание в DTO
func FromDomainBusiness(b *domain.Business, parsed schedule.Parsed) *HoursResponse {
	if b == nil {
		return nil
	}

	resp := &HoursResponse{
		BusinessID:   b.ID,
		Slug:         b.Slug,
		Name:         b.Name,
		Address:      b.Address,
		ServiceType:  string(b.ServiceType),
		HoursText:    b.HoursText,
		BreakText:    b.BreakText,
		SlotCapacity: b.SlotCapacity,
		Capacity:     b.Capacity(),
		Canonical:    parsed.Schedule.String(),
		UsesFallback: parsed.Schedule.IsEmpty(),
		Week:         make([]DayHours, 0, len(schedule.DayTokens)),
		Breaks:       make([]string, 0, len(parsed.Breaks)),
	}

	for day, token := range schedule.DayTokens {
		intervals := make([]string, 0, len(parsed.Schedule[day]))
		for _, interval := range parsed.Schedule[day] {
			intervals = append(intervals, interval.String())
		}
		resp.Week = append(resp.Week, DayHours{Day: token, Intervals: intervals})
	}

	for _, br := range parsed.Breaks {
		resp.Breaks = append(resp.Breaks, br.String())
	}

	return resp
}
