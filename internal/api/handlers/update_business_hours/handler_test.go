package update_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/internal/service/business"
	"github.com/m04kA/termine-direkt/internal/service/business/models"
	"github.com/m04kA/termine-direkt/pkg/logger"
)

type fakeService struct {
	got *models.UpdateHoursRequest
}

func (f *fakeService) GetHours(ctx context.Context, businessID int64) (*models.HoursResponse, error) {
	return nil, nil
}

func (f *fakeService) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	f.got = req
	if req.BusinessID != req.ActorBusinessID {
		return nil, business.ErrAccessDenied
	}
	if len(req.HoursText) > 2000 {
		return nil, business.ErrInvalidInput
	}
	return &models.HoursResponse{BusinessID: req.BusinessID, HoursText: req.HoursText}, nil
}

func put(svc *fakeService, target, actor, body string) int {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/businesses/{businessId}/hours", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	r.Header.Set(middleware.BusinessIDHeader, actor)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w.Code
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	status := put(svc, "/businesses/4/hours", "4", `{"hoursText":"Di-Sa 09:00-18:00","slotCapacity":"1"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Di-Sa 09:00-18:00", svc.got.HoursText)
	assert.Equal(t, "1", *svc.got.SlotCapacity)
	assert.Equal(t, int64(4), svc.got.ActorBusinessID)

	assert.Equal(t, http.StatusForbidden, put(svc, "/businesses/4/hours", "5", `{"hoursText":"Mo 10:00-12:00"}`))
	assert.Equal(t, http.StatusBadRequest, put(svc, "/businesses/4/hours", "4", `{"hours":1}`))
	assert.Equal(t, http.StatusBadRequest, put(svc, "/businesses/4/hours", "4", `{"hoursText":"`+strings.Repeat("x", 2001)+`"}`))
	assert.Equal(t, http.StatusUnauthorized, put(svc, "/businesses/4/hours", "", `{"hoursText":"Mo 10:00-12:00"}`))
}
