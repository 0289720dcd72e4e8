package get_reservation

import (
	"context"

	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
)

type ReservationService interface {
	ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.ReservationListResponse, error)
	GetByID(ctx context.Context, id int64, actorBusinessID int64) (*models.ReservationResponse, error)
	Delete(ctx context.Context, id int64, actorBusinessID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
