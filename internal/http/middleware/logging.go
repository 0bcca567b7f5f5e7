package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
)

// Logging кладёт в контекст логгер с request_id и по завершении запроса
// пишет одну запись "http". Логируется только путь: в query бывают коды.
func Logging(base *slog.Logger) Middleware {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lg := base
			rid := RequestIDFrom(r.Context())
			if rid == "" {
				rid = r.Header.Get("X-Request-Id")
			}
			if rid != "" {
				lg = lg.With(slog.String("request_id", rid))
			}

			sw := wrap(w)
			start := time.Now()

			next.ServeHTTP(sw, r.WithContext(logctx.Into(r.Context(), lg)))

			lg.LogAttrs(r.Context(), slog.LevelInfo, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.Status()),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.written),
			)
		})
	}
}
