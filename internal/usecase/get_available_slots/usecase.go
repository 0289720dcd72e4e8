package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
	businessRepo "github.com/m04kA/termine-direkt/internal/infra/storage/business"
	"github.com/m04kA/termine-direkt/internal/schedule"
)

// UseCase use case для получения доступных слотов бизнеса на дату
type UseCase struct {
	businessRepo BusinessRepository
	ledger       CapacityLedger
	cache        ScheduleCache
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	ledger CapacityLedger,
	cache ScheduleCache,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.SlotIntervalMinutes <= 0 {
		settings.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if settings.LeadTimeMinutes < 0 {
		settings.LeadTimeMinutes = domain.DefaultLeadTimeMinutes
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}

	return &UseCase{
		businessRepo: businessRepo,
		ledger:       ledger,
		cache:        cache,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
// Повторный вызов без новых бронирований возвращает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s", req.BusinessID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе бизнеса
	now := uc.timeProvider.Now().In(uc.settings.Location)

	// 3. Проверяем дату
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 5. Разбираем часы работы и перерывы (кэш по исходному тексту)
	parsed := uc.cache.Get(business.HoursText, business.Breaks())
	usesFallback := parsed.Schedule.IsEmpty()
	if usesFallback {
		uc.logger.Info("GetAvailableSlots: hours of business=%d not recognized, using fallback", req.BusinessID)
	}

	// 6. Генерируем слоты
	times := schedule.Generate(req.Date, parsed.Schedule, parsed.Breaks, uc.settings.SlotIntervalMinutes)

	// 7. Читаем живые счётчики одним запросом
	counts, err := uc.ledger.CountsByTime(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to count reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
	}

	// 8. Отмечаем заполненные и слишком близкие слоты
	capacity := business.Capacity()
	slots := annotateSlots(times, counts, capacity, req.Date, now, uc.settings.LeadTimeMinutes)

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		BusinessID:   req.BusinessID,
		Capacity:     capacity,
		UsesFallback: usesFallback,
		Slots:        slots,
	}, nil
}
