package create_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
	"github.com/m04kA/termine-direkt/internal/api/middleware"
	createReservation "github.com/m04kA/termine-direkt/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgSlotFull           = "слот уже занят, выберите другое время"
	msgBusinessNotFound   = "бизнес не найден"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot    = "выбранное время не является слотом на эту дату"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMissingBusinessID  = "отсутствует ID бизнеса"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/reservations
// Бронирование гостем со страницы бизнеса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("POST /businesses/{id}/reservations - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	h.create(w, r, businessID, false)
}

// HandleOwner POST /api/v1/businesses/{businessId}/reservations с заголовком X-Business-ID
// Бронирование, которое бизнес вносит сам из дашборда. Требует middleware.Auth
func (h *Handler) HandleOwner(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("POST /businesses/{id}/reservations (owner) - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	actorID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/reservations (owner) - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	if actorID != businessID {
		h.logger.Warn("POST /businesses/{id}/reservations (owner) - Access denied: business_id=%d, actor=%d", businessID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	h.create(w, r, businessID, true)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, businessID int64, enteredByOwner bool) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations - Invalid date: %v", err)
		handlers.RespondValidation(w, []handlers.FieldIssue{{Field: "date", Message: "must be YYYY-MM-DD"}})
		return
	}
	useCaseReq.EnteredByOwner = enteredByOwner

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var fieldErrors createReservation.FieldErrors

		switch {
		case errors.As(err, &fieldErrors):
			h.logger.Warn("POST /businesses/{id}/reservations - Validation failed: business_id=%d, %v", businessID, err)
			handlers.RespondValidation(w, toFieldIssues(fieldErrors))

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /businesses/{id}/reservations - Slot full: business_id=%d, date=%s, time=%s",
				businessID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/reservations - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{id}/reservations - Failed to create reservation: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/reservations - Reservation created: reservation_id=%d, business_id=%d, date=%s, time=%s, owner=%t",
		result.ID, businessID, req.Date, req.Time, enteredByOwner)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func toFieldIssues(fieldErrors createReservation.FieldErrors) []handlers.FieldIssue {
	issues := make([]handlers.FieldIssue, len(fieldErrors))
	for i, fe := range fieldErrors {
		issues[i] = handlers.FieldIssue{Field: fe.Field, Message: fe.Message}
	}
	return issues
}
