package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
)

var errPanic = errors.New("panic")

// Recover превращает панику обработчика в 500 с единым телом ошибки.
// Если ответ уже начат, тело не дописывается: соединение просто закрывается.
// http.ErrAbortHandler пробрасывается дальше, как это делает net/http.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrap(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).Error("panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if sw.started() {
					panic(http.ErrAbortHandler)
				}
				apierrors.WriteError(sw, r, errPanic)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
