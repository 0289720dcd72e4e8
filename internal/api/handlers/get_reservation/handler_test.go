package get_reservation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/pkg/logger"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		actor  string
		err    error
		status int
	}{
		{name: "own reservation", target: "/reservations/10", actor: "1", status: http.StatusOK},
		{name: "foreign reservation", target: "/reservations/10", actor: "2", status: http.StatusForbidden},
		{name: "unknown", target: "/reservations/11", actor: "1", status: http.StatusNotFound},
		{name: "bad id", target: "/reservations/x", actor: "1", status: http.StatusBadRequest},
		{name: "internal", target: "/reservations/10", actor: "1", err: errors.New("db"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.Use(middleware.Auth)
			router.HandleFunc("/reservations/{reservationId}", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r.Header.Set(middleware.BusinessIDHeader, tt.actor)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
