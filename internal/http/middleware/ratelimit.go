package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/product-catalog/internal/apperr"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

// RateLimit rejects requests from clients that exceed limiter with 429.
// Limiter failures let the request through.
func RateLimit(limiter rl.Limiter, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("client", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				log.Warn().Str("client", key).Str("path", r.URL.Path).Msg("rate limit exceeded")
				body, _ := json.Marshal(apperr.Response{
					StatusCode: http.StatusTooManyRequests,
					Message:    "too many requests",
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write(body)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
