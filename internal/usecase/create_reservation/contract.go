package create_reservation

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

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// CapacityLedger интерфейс счётчика бронирований по слотам
type CapacityLedger interface {
	IsFull(ctx context.Context, businessID int64, date time.Time, slot types.TimeString, capacity int) (bool, error)
	NextOrdinal(ctx context.Context, businessID int64, date time.Time, slot types.TimeString, capacity int) (int, error)
}

// ScheduleCache интерфейс кэша разобранных расписаний
type ScheduleCache interface {
	Get(hoursText, breakText string) schedule.Parsed
}

// Notifier отправляет уведомление о новом бронировании
type Notifier interface {
	NotifyReservation(ctx context.Context, business *domain.Business, reservation *domain.Reservation) error
}

// OutcomeObserver считает исходы бронирований (prometheus)
type OutcomeObserver interface {
	ObserveBookingOutcome(outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
