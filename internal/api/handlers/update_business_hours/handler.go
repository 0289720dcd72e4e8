package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/internal/service/business"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные часы работы"
	msgMissingBusinessID  = "отсутствует ID бизнеса"
	msgForbidden          = "доступ запрещен"
	msgBusinessNotFound   = "бизнес не найден"
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

// Handle PUT /api/v1/businesses/{businessId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	actorID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/hours - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := h.service.UpdateHours(r.Context(), req.ToServiceRequest(businessID, actorID))
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/hours - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, business.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/hours - Access denied: business_id=%d, actor=%d", businessID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, business.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("PUT /businesses/{id}/hours - Failed to update hours: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/hours - Hours updated: business_id=%d, uses_fallback=%t", businessID, hours.UsesFallback)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
