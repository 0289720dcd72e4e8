package models

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
)

// ListByDateRequest запрос бронирований бизнеса на дату для дашборда
type ListByDateRequest struct {
	BusinessID      int64     // Чьи бронирования запрашиваются
	ActorBusinessID int64     // Кто запрашивает (из заголовка авторизации)
	Date            time.Time // Дата
}

// ReservationResponse бронирование для дашборда владельца
type ReservationResponse struct {
	ID          int64     `json:"id"`
	BusinessID  int64     `json:"businessId"`
	Date        string    `json:"date"` // "2024-05-01"
	Time        string    `json:"time"` // "18:00"
	SlotOrdinal int       `json:"slotOrdinal"`
	GuestName   string    `json:"guestName"`
	GuestEmail  *string   `json:"guestEmail,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	PartySize   *int      `json:"partySize,omitempty"`
	Service     *string   `json:"service,omitempty"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Date         string                `json:"date"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Date:        r.Date.Format(domain.DateFormat),
		Time:        r.Time.String(),
		SlotOrdinal: r.SlotOrdinal,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		Phone:       r.Phone,
		PartySize:   r.PartySize,
		Service:     r.Service,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(date time.Time, reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Date:         date.Format(domain.DateFormat),
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}
