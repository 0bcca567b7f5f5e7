package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/personnel-oauth/internal/metrics"
)

// Metrics учитывает запросы по шаблону маршрута chi (а не по сырому пути,
// чтобы {id} не раздувал кардинальность). m == nil делает мидлвар no-op.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrap(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			m.ObserveRequest(r.Method, route, sw.Status(), time.Since(start))
		})
	}
}
