package get_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
	"github.com/m04kA/termine-direkt/internal/service/business"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgBusinessNotFound  = "бизнес не найден"
	msgInvalidSlug       = "некорректный slug бизнеса"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("GET /businesses/{id}/hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	hours, err := h.service.GetHours(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/hours - Failed to get hours: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hours)
}

// HandleBySlug GET /api/v1/businesses/by-slug/{slug}
// Публичная страница бизнеса открывается по slug, а не по ID
func (h *Handler) HandleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	hours, err := h.service.GetHoursBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/by-slug/{slug} - Business not found: slug=%q", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlug)

		default:
			h.logger.Error("GET /businesses/by-slug/{slug} - Failed to get hours: slug=%q, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hours)
}
