package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/service/reservations"
	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingBusinessID = "отсутствует ID бизнеса"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

// NewHandler создает handler. location - часовой пояс бизнеса, в нём определяется "сегодня"
func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/reservations?date=YYYY-MM-DD
// Без date возвращает бронирования на сегодня в часовом поясе бизнеса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("GET /businesses/{id}/reservations - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	actorID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/reservations - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	date := today(h.location)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.ListByDate(r.Context(), &models.ListByDateRequest{
		BusinessID:      businessID,
		ActorBusinessID: actorID,
		Date:            date,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{id}/reservations - Access denied: business_id=%d, actor=%d", businessID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /businesses/{id}/reservations - Failed to list reservations: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/reservations - Reservations retrieved: business_id=%d, count=%d",
		businessID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// today сегодняшняя дата в loc как полночь UTC, в том же виде, что и разобранный параметр date
func today(loc *time.Location) time.Time {
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
