package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
)

// ErrRequestTimeout — причина отмены контекста по общему дедлайну запроса.
var ErrRequestTimeout = errors.New("request timeout")

// Timeout ограничивает время обработки запроса, если у контекста ещё нет
// своего дедлайна. d <= 0 отключает ограничение.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, has := r.Context().Deadline(); has {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeoutCause(r.Context(), d, ErrRequestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(context.Cause(ctx), ErrRequestTimeout) {
				logctx.From(ctx).Warn("request_timeout",
					slog.String("path", r.URL.Path),
					slog.Duration("limit", d),
				)
			}
		})
	}
}
