package get_available_slots

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	getAvailableSlots "github.com/m04kA/termine-direkt/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	BusinessID   int64           `json:"businessId"`
	Capacity     int             `json:"capacity"`
	UsesFallback bool            `json:"usesFallback"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time     string `json:"time"`
	Booked   int    `json:"booked"`
	Capacity int    `json:"capacity"`
	Full     bool   `json:"full"`
	TooSoon  bool   `json:"tooSoon"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:     slot.Time.String(),
			Booked:   slot.Booked,
			Capacity: slot.Capacity,
			Full:     slot.Full,
			TooSoon:  slot.TooSoon,
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		BusinessID:   resp.BusinessID,
		Capacity:     resp.Capacity,
		UsesFallback: resp.UsesFallback,
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		Date:       date,
	}, nil
}
