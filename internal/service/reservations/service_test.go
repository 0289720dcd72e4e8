package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/termine-direkt/internal/domain"
	reservationRepo "github.com/m04kA/termine-direkt/internal/infra/storage/reservation"
	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
	"github.com/m04kA/termine-direkt/pkg/logger"
	"github.com/m04kA/termine-direkt/pkg/ptr"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
	listErr      error
	deleted      []int64
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByDate(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.BusinessID == filter.BusinessID && r.Date.Equal(filter.Date) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

var date = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{
		10: {ID: 10, BusinessID: 1, Date: date, Time: "18:00", SlotOrdinal: 1, GuestName: "Anna", PartySize: ptr.Ptr(2)},
		11: {ID: 11, BusinessID: 2, Date: date, Time: "12:00", SlotOrdinal: 1, GuestName: "Jonas"},
	}}
	return NewService(repo, logger.NewNop()), repo
}

func TestListByDate(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{BusinessID: 1, ActorBusinessID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", resp.Date)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "18:00", resp.Reservations[0].Time)
	assert.Equal(t, 2, *resp.Reservations[0].PartySize)
}

func TestListByDate_Errors(t *testing.T) {
	svc, repo := newService()

	_, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{BusinessID: 1, ActorBusinessID: 2, Date: date})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListByDate(context.Background(), &models.ListByDateRequest{BusinessID: 1, ActorBusinessID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.ListByDate(context.Background(), &models.ListByDateRequest{BusinessID: 1, ActorBusinessID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", resp.GuestName)

	_, err = svc.GetByID(context.Background(), 11, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newService()

	err := svc.Delete(context.Background(), 11, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	assert.Equal(t, []int64{10}, repo.deleted)

	err = svc.Delete(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
