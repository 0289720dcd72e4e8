package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/termine-direkt/internal/domain"
	businessRepo "github.com/m04kA/termine-direkt/internal/infra/storage/business"
	"github.com/m04kA/termine-direkt/internal/service/business/models"
)

// Service сервис настроек бизнеса: часы работы, перерывы, вместимость слота
type Service struct {
	businessRepo BusinessRepository
	cache        ScheduleCache
	validate     *validator.Validate
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, cache ScheduleCache, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		cache:        cache,
		validate:     validator.New(),
		logger:       logger,
	}
}

// GetHours получает часы работы бизнеса вместе с результатом их разбора
func (s *Service) GetHours(ctx context.Context, businessID int64) (*models.HoursResponse, error) {
	s.logger.Info("GetHours: fetching hours for business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	b, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetHours: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetHours: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(b, s.cache.Get(b.HoursText, b.Breaks())), nil
}

// GetHoursBySlug получает часы работы по slug публичной страницы бизнеса
func (s *Service) GetHoursBySlug(ctx context.Context, slug string) (*models.HoursResponse, error) {
	slug = strings.TrimSpace(slug)
	s.logger.Info("GetHoursBySlug: fetching hours for slug=%q", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	b, err := s.businessRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetHoursBySlug: business slug=%q not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetHoursBySlug: repository error for slug=%q: %v", slug, err)
		return nil, fmt.Errorf("%w: GetHoursBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(b, s.cache.Get(b.HoursText, b.Breaks())), nil
}

// UpdateHours изменяет часы работы, перерывы и вместимость слота
// Доступно только самому бизнесу. Уже созданные бронирования не затрагиваются
func (s *Service) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("UpdateHours: updating hours for business=%d by business=%d", req.BusinessID, req.ActorBusinessID)

	// 1. Валидируем входные данные
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateHours: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем права доступа
	if req.BusinessID != req.ActorBusinessID {
		s.logger.Warn("UpdateHours: business=%d has no access to business=%d", req.ActorBusinessID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	// 3. Сохраняем
	hoursText := strings.TrimSpace(req.HoursText)
	b, err := s.businessRepo.UpdateHours(ctx, req.BusinessID, hoursText, trimmed(req.BreakText), trimmed(req.SlotCapacity))
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("UpdateHours: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateHours: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	parsed := s.cache.Get(b.HoursText, b.Breaks())
	if parsed.Schedule.IsEmpty() && hoursText != "" {
		s.logger.Warn("UpdateHours: hours of business=%d could not be parsed, fallback %02d:00-%02d:00 applies",
			b.ID, domain.FallbackOpenMinutes/60, domain.FallbackCloseMinutes/60)
	}

	s.logger.Info("UpdateHours: successfully updated hours for business=%d", b.ID)
	return models.FromDomainBusiness(b, parsed), nil
}

// trimmed обрезает пробелы, пустая строка превращается в nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
