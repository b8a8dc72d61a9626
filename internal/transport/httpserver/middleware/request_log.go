package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	sloghttp "github.com/samber/slog-http"

	"wedding-rsvp-go/pkg/logger"
)

// RequestLogger logs one line per request. Headers are never logged; the
// Authorization header is only reported as present or absent.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	access := sloghttp.NewWithConfig(log.Slog(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithSpanID:       true,
		WithTraceID:      true,
	})

	return func(next http.Handler) http.Handler {
		return access(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sloghttp.AddCustomAttributes(r, slog.String("request_id", chimw.GetReqID(r.Context())))
			sloghttp.AddCustomAttributes(r, slog.Bool("auth", r.Header.Get("Authorization") != ""))
			next.ServeHTTP(w, r)
		}))
	}
}
