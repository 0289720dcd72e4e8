package create_reservation

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	createReservation "github.com/m04kA/termine-direkt/internal/usecase/create_reservation"
	"github.com/m04kA/termine-direkt/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date       string  `json:"date"` // "2024-05-01"
	Time       string  `json:"time"` // "18:00"
	GuestName  string  `json:"guestName"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	PartySize  *int    `json:"partySize,omitempty"`
	Service    *string `json:"service,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// ReservationResponse HTTP response model. Внутренние данные бизнеса не возвращаются
type ReservationResponse struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"businessId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	GuestName  string  `json:"guestName"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	PartySize  *int    `json:"partySize,omitempty"`
	Service    *string `json:"service,omitempty"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибка возвращается только для даты. Формат времени проверяет use case
func (r *CreateReservationRequest) ToUseCaseRequest(businessID int64) (*createReservation.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createReservation.Request{
		BusinessID: businessID,
		Date:       date,
		Time:       types.TimeString(r.Time),
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Phone:      r.Phone,
		PartySize:  r.PartySize,
		Service:    r.Service,
		Note:       r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		Phone:      resp.Phone,
		PartySize:  resp.PartySize,
		Service:    resp.Service,
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
