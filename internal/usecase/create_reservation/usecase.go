package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/termine-direkt/internal/domain"
	businessRepo "github.com/m04kA/termine-direkt/internal/infra/storage/business"
	reservationRepo "github.com/m04kA/termine-direkt/internal/infra/storage/reservation"
	"github.com/m04kA/termine-direkt/internal/schedule"
)

// UseCase use case создания бронирования
//
// Состояния: валидация -> проверка вместимости -> вставка -> {committed | slot_full | rejected}.
// Проверка вместимости и вставка выполняются в одной SERIALIZABLE транзакции, а уникальный
// ключ (business, date, time, slot_ordinal) не даёт двум конкурентным запросам занять одно место.
// Проигравший гонку запрос один раз повторяет проверку и вставку в новой транзакции:
// если место ещё есть, он получает следующий свободный номер, иначе ErrSlotFull.
type UseCase struct {
	businessRepo    BusinessRepository
	reservationRepo ReservationRepository
	ledger          CapacityLedger
	cache           ScheduleCache
	txManager       TransactionManager
	notifier        Notifier
	outcomes        OutcomeObserver
	settings        Settings
	validate        *validator.Validate
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	reservationRepo ReservationRepository,
	ledger CapacityLedger,
	cache ScheduleCache,
	txManager TransactionManager,
	notifier Notifier,
	outcomes OutcomeObserver,
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
		businessRepo:    businessRepo,
		reservationRepo: reservationRepo,
		ledger:          ledger,
		cache:           cache,
		txManager:       txManager,
		notifier:        notifier,
		outcomes:        outcomes,
		settings:        settings,
		validate:        newValidator(),
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: business=%d, date=%s, time=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Time)

	result, err := uc.execute(ctx, req)

	switch {
	case err == nil:
		uc.observe(OutcomeCommitted)
	case errors.Is(err, ErrSlotFull):
		uc.observe(OutcomeSlotFull)
	default:
		uc.observe(OutcomeRejected)
	}

	if err != nil {
		return nil, err
	}

	// Уведомление не влияет на исход: бронирование уже сохранено
	if uc.notifier != nil && !req.EnteredByOwner {
		if err := uc.notifier.NotifyReservation(ctx, result.business, result.reservation); err != nil {
			uc.logger.Warn("CreateReservation: notification for reservation id=%d failed: %v", result.reservation.ID, err)
		}
	}

	r := result.reservation
	return &Response{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Date:       r.Date,
		Time:       r.Time,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Phone:      r.Phone,
		PartySize:  r.PartySize,
		Service:    r.Service,
		Note:       r.Note,
		CreatedAt:  r.CreatedAt,
	}, nil
}

type committed struct {
	business    *domain.Business
	reservation *domain.Reservation
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*committed, error) {
	// 1. Валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(uc.validate, req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе бизнеса
	now := uc.timeProvider.Now().In(uc.settings.Location)

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateReservation: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 5. Поля, обязательные для типа бизнеса
	if err := validateForBusiness(business, req); err != nil {
		uc.logger.Warn("CreateReservation: validation for %s failed: %v", business.ServiceType, err)
		return nil, err
	}

	// 6. Время должно быть одним из слотов этой даты
	parsed := uc.cache.Get(business.HoursText, business.Breaks())
	slots := schedule.Generate(req.Date, parsed.Schedule, parsed.Breaks, uc.settings.SlotIntervalMinutes)
	if !schedule.Contains(slots, req.Time) {
		uc.logger.Warn("CreateReservation: %s is not a slot of business=%d on %s",
			req.Time, req.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidTimeSlot
	}

	// 7. Lead time для бронирований гостей на сегодня
	if uc.settings.EnforceLeadTime && !req.EnteredByOwner && schedule.IsTooSoon(req.Time, req.Date, now, uc.settings.LeadTimeMinutes) {
		uc.logger.Warn("CreateReservation: slot %s starts in less than %d minutes", req.Time, uc.settings.LeadTimeMinutes)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, uc.settings.LeadTimeMinutes)
	}

	capacity := business.Capacity()

	// 8. Проверка вместимости и вставка, при проигранной гонке ещё одна попытка
	var created *domain.Reservation
	for attempt := 1; ; attempt++ {
		created, err = uc.reserve(ctx, req, capacity)
		if err == nil {
			break
		}
		if !errors.Is(err, errConcurrentBooking) {
			return nil, err
		}
		if attempt == maxReserveAttempts {
			uc.logger.Warn("CreateReservation: slot %s %s still contended after %d attempts",
				req.Date.Format(domain.DateFormat), req.Time, attempt)
			return nil, fmt.Errorf("%w: %v", ErrSlotFull, err)
		}
		uc.logger.Warn("CreateReservation: retrying slot %s %s after concurrent booking",
			req.Date.Format(domain.DateFormat), req.Time)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	return &committed{business: business, reservation: created}, nil
}

// maxReserveAttempts сколько раз пытаемся занять место при конкурентных бронированиях
const maxReserveAttempts = 2

// reserve перечитывает счётчик, выбирает номер места и вставляет бронирование в одной SERIALIZABLE транзакции
func (uc *UseCase) reserve(ctx context.Context, req *Request, capacity int) (*domain.Reservation, error) {
	var created *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Перечитываем счётчик именно сейчас
		full, err := uc.ledger.IsFull(txCtx, req.BusinessID, req.Date, req.Time, capacity)
		if err != nil {
			return uc.persistenceError("count reservations", err)
		}

		if full {
			uc.logger.Warn("CreateReservation: slot %s %s is full, capacity=%d",
				req.Date.Format(domain.DateFormat), req.Time, capacity)
			return ErrSlotFull
		}

		// 2. Выбираем свободный порядковый номер места
		ordinal, err := uc.ledger.NextOrdinal(txCtx, req.BusinessID, req.Date, req.Time, capacity)
		if err != nil {
			return uc.persistenceError("select slot ordinal", err)
		}
		if ordinal == 0 {
			uc.logger.Warn("CreateReservation: no free ordinal for slot %s %s, capacity=%d",
				req.Date.Format(domain.DateFormat), req.Time, capacity)
			return ErrSlotFull
		}

		uc.logger.Info("CreateReservation: slot available, ordinal=%d of %d", ordinal, capacity)

		// 3. Сохраняем бронирование
		reservation := &domain.Reservation{
			BusinessID:  req.BusinessID,
			Date:        req.Date,
			Time:        req.Time,
			SlotOrdinal: ordinal,
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			Phone:       req.Phone,
			PartySize:   req.PartySize,
			Service:     req.Service,
			Note:        req.Note,
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return uc.persistenceError("create reservation", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotFull) || errors.Is(err, ErrInternal) || errors.Is(err, errConcurrentBooking) {
			return nil, err
		}
		// Ошибка begin/commit из менеджера транзакций
		return nil, uc.persistenceError("transaction", err)
	}

	return created, nil
}

// persistenceError классифицирует ошибку хранилища: проигранная гонка за место
// становится errConcurrentBooking, всё остальное (включая таймаут) ErrInternal
func (uc *UseCase) persistenceError(step string, err error) error {
	if reservationRepo.IsConflict(err) {
		uc.logger.Warn("CreateReservation: %s lost a concurrent booking race: %v", step, err)
		return fmt.Errorf("%w: %s: %v", errConcurrentBooking, step, err)
	}
	uc.logger.Error("CreateReservation: failed to %s: %v", step, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, step, err)
}

func (uc *UseCase) observe(outcome string) {
	if uc.outcomes != nil {
		uc.outcomes.ObserveBookingOutcome(outcome)
	}
}
