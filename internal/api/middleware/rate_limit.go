package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/m04kA/termine-direkt/internal/api/handlers"
)

const (
	defaultLimiterEntries = 10000
	msgTooManyRequests    = "слишком много запросов, попробуйте позже"
)

// RateLimiter ограничивает частоту запросов с одного IP
// Лимитеры хранятся в LRU, так что память ограничена при любом числе клиентов
type RateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	logger   Logger
}

// NewRateLimiter создает ограничитель на requestsPerMinute запросов в минуту с запасом burst
func NewRateLimiter(requestsPerMinute float64, burst int, logger Logger) (*RateLimiter, error) {
	limiters, err := lru.New[string, *rate.Limiter](defaultLimiterEntries)
	if err != nil {
		return nil, fmt.Errorf("middleware: create limiter cache: %w", err)
	}

	return &RateLimiter{
		limiters: limiters,
		limit:    rate.Every(time.Duration(float64(time.Minute) / requestsPerMinute)),
		burst:    burst,
		logger:   logger,
	}, nil
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	if limiter, ok := rl.limiters.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	// Параллельный запрос мог уже добавить свой лимитер
	if existing, ok, _ := rl.limiters.PeekOrAdd(ip, limiter); ok {
		return existing
	}
	return limiter
}

// Middleware отвечает 429, если лимит для IP исчерпан
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("Rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP первый адрес из X-Forwarded-For, иначе адрес соединения
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
