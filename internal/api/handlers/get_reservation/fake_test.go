package get_reservation

import (
	"context"

	"github.com/m04kA/termine-direkt/internal/service/reservations"
	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
)

// fakeService бронирование 10 принадлежит бизнесу 1
type fakeService struct {
	listReq *models.ListByDateRequest
	deleted []int64
	err     error
}

func (f *fakeService) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.ReservationListResponse, error) {
	f.listReq = req
	if f.err != nil {
		return nil, f.err
	}
	if req.BusinessID != req.ActorBusinessID {
		return nil, reservations.ErrAccessDenied
	}
	return &models.ReservationListResponse{
		Date:         "2024-05-01",
		Reservations: []models.ReservationResponse{{ID: 10, BusinessID: 1, Time: "18:00", GuestName: "Anna"}},
	}, nil
}

func (f *fakeService) GetByID(ctx context.Context, id int64, actorBusinessID int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id != 10 {
		return nil, reservations.ErrReservationNotFound
	}
	if actorBusinessID != 1 {
		return nil, reservations.ErrAccessDenied
	}
	return &models.ReservationResponse{ID: 10, BusinessID: 1, Time: "18:00", GuestName: "Anna"}, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64, actorBusinessID int64) error {
	if _, err := f.GetByID(ctx, id, actorBusinessID); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}
