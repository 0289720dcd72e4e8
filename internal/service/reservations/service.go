package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/termine-direkt/internal/domain"
	reservationRepo "github.com/m04kA/termine-direkt/internal/infra/storage/reservation"
	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
)

// Service сервис бронирований для дашборда владельца бизнеса
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListByDate получает бронирования бизнеса на дату, отсортированные по времени
// Доступно только самому бизнесу
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for business=%d, date=%s by business=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.ActorBusinessID)

	if req.BusinessID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: businessID and date are required", ErrInvalidInput)
	}

	if req.BusinessID != req.ActorBusinessID {
		s.logger.Warn("ListByDate: business=%d has no access to business=%d", req.ActorBusinessID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.ListByDate(ctx, domain.ReservationFilter{
		BusinessID: req.BusinessID,
		Date:       req.Date,
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: successfully fetched %d reservations for business=%d", len(reservations), req.BusinessID)
	return models.FromDomainReservationList(req.Date, reservations), nil
}

// GetByID получает бронирование по ID
// Бизнес видит только свои бронирования
func (s *Service) GetByID(ctx context.Context, id int64, actorBusinessID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for business=%d", id, actorBusinessID)

	reservation, err := s.get(ctx, "GetByID", id, actorBusinessID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование. Освободившееся место снова доступно в слоте
func (s *Service) Delete(ctx context.Context, id int64, actorBusinessID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by business=%d", id, actorBusinessID)

	if _, err := s.get(ctx, "Delete", id, actorBusinessID); err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// get получает бронирование и проверяет, что оно принадлежит бизнесу
func (s *Service) get(ctx context.Context, op string, id int64, actorBusinessID int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if reservation.BusinessID != actorBusinessID {
		s.logger.Warn("%s: business=%d has no access to reservation id=%d", op, actorBusinessID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}
