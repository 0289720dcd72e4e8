package update_business_hours

import (
	"context"

	"github.com/m04kA/termine-direkt/internal/service/business/models"
)

type BusinessService interface {
	GetHours(ctx context.Context, businessID int64) (*models.HoursResponse, error)
	UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
