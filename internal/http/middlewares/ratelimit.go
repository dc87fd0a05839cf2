package middlewares

import (
	"net"
	"net/http"
	"strconv"

	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/rate"
)

// RateLimit aplica el limiter por IP de cliente. Si el limiter falla (p.ej.
// Redis caído) deja pasar: preferimos servir a bloquear todo el auth.
func RateLimit(l rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := l.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter unavailable", logger.Err(err))
				next.ServeHTTP(w, r)
				return
			}
			if !res.Allowed {
				secs := int(res.RetryAfter.Seconds())
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				helpers.WriteError(w, http.StatusTooManyRequests, "too_many_requests", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
