package get_business_hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/termine-direkt/internal/service/business"
	"github.com/m04kA/termine-direkt/internal/service/business/models"
	"github.com/m04kA/termine-direkt/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetHours(ctx context.Context, businessID int64) (*models.HoursResponse, error) {
	if businessID != 1 {
		return nil, business.ErrBusinessNotFound
	}
	return &models.HoursResponse{BusinessID: 1, Canonical: "Mo-Fr 12:00-15:00", Capacity: 3}, nil
}

func (fakeService) GetHoursBySlug(ctx context.Context, slug string) (*models.HoursResponse, error) {
	switch slug {
	case "trattoria":
		return &models.HoursResponse{BusinessID: 1, Slug: "trattoria", Canonical: "Mo-Fr 12:00-15:00", Capacity: 3}, nil
	case "kaputt":
		return nil, errors.New("connection reset")
	}
	return nil, business.ErrBusinessNotFound
}

func (fakeService) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	return nil, nil
}

func TestHandle(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/hours", NewHandler(fakeService{}, logger.NewNop()).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/1/hours", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.HoursResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Mo-Fr 12:00-15:00", body.Canonical)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/2/hours", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/zwei/hours", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBySlug(t *testing.T) {
	h := NewHandler(fakeService{}, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/businesses/by-slug/{slug}", h.HandleBySlug).Methods(http.MethodGet)
	router.HandleFunc("/businesses/{businessId}/hours", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/by-slug/trattoria", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.HoursResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.BusinessID)
	assert.Equal(t, "trattoria", body.Slug)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/by-slug/unbekannt", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// slug "hours" не должен уходить в маршрут по ID
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/by-slug/hours", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/by-slug/kaputt", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
