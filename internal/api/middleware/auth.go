package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
)

// BusinessIDHeader заголовок с ID бизнеса, от имени которого работает дашборд
const BusinessIDHeader = "X-Business-ID"

type businessIDKey struct{}

// Auth требует заголовок X-Business-ID с положительным числом и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(BusinessIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+BusinessIDHeader)
			return
		}

		businessID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || businessID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+BusinessIDHeader)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithBusinessID(r.Context(), businessID)))
	})
}

// WithBusinessID кладёт ID бизнеса в контекст
func WithBusinessID(ctx context.Context, businessID int64) context.Context {
	return context.WithValue(ctx, businessIDKey{}, businessID)
}

// GetBusinessID достаёт ID бизнеса, установленный Auth
func GetBusinessID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(businessIDKey{}).(int64)
	return id, ok
}
