package list_reservations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/internal/service/reservations/models"
	"github.com/m04kA/termine-direkt/pkg/logger"
)

func serve(svc *fakeService, target, actor string) *httptest.ResponseRecorder {
	return serveIn(svc, time.UTC, target, actor)
}

func serveIn(svc *fakeService, loc *time.Location, target, actor string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/businesses/{businessId}/reservations", NewHandler(svc, loc, logger.NewNop()).Handle)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(middleware.BusinessIDHeader, actor)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/businesses/1/reservations?date=2024-05-01", "1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), svc.listReq.Date)

	var body models.ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "Anna", body.Reservations[0].GuestName)
}

func TestHandle_DefaultsToToday(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/businesses/1/reservations", "1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), svc.listReq.Date.Format("2006-01-02"))
	assert.Equal(t, time.UTC, svc.listReq.Date.Location())
}

func TestHandle_TodayInBusinessTimezone(t *testing.T) {
	// Разница в сутки: хотя бы в одном из поясов сегодня не совпадает с UTC
	for _, loc := range []*time.Location{
		time.FixedZone("UTC+14", 14*60*60),
		time.FixedZone("UTC-12", -12*60*60),
	} {
		svc := &fakeService{}
		w := serveIn(svc, loc, "/businesses/1/reservations", "1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, time.Now().In(loc).Format("2006-01-02"), svc.listReq.Date.Format("2006-01-02"), loc.String())
		assert.Zero(t, svc.listReq.Date.Hour())
	}
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{}, "/businesses/1/reservations", "2").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/businesses/1/reservations?date=gestern", "1").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, "/businesses/1/reservations", "").Code)
}
