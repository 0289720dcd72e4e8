package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/schedule"
	"github.com/m04kA/termine-direkt/pkg/types"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// CapacityLedger интерфейс счётчика бронирований по слотам
type CapacityLedger interface {
	CountsByTime(ctx context.Context, businessID int64, date time.Time) (map[types.TimeString]int, error)
}

// ScheduleCache интерфейс кэша разобранных расписаний
type ScheduleCache interface {
	Get(hoursText, breakText string) schedule.Parsed
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
