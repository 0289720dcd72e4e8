package business

import (
	"context"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/schedule"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	UpdateHours(ctx context.Context, id int64, hoursText string, breakText, slotCapacity *string) (*domain.Business, error)
}

// ScheduleCache кэш разобранных часов работы
type ScheduleCache interface {
	Get(hoursText, breakText string) schedule.Parsed
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
