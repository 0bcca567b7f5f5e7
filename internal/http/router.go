package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/personnel-oauth/internal/http/handlers"
	"github.com/pribylovaa/personnel-oauth/internal/http/middleware"
	"github.com/pribylovaa/personnel-oauth/internal/metrics"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Metrics *metrics.Metrics // nil — без метрик
}

// Service — всё, что нужно роутеру от бизнес-слоя: хендлерам и проверке токена.
type Service interface {
	handlers.Service
	middleware.Validator
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),           // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),  // кладём request-scoped логгер в контекст и логируем
		middleware.Recover(),             // паника -> 500 с request_id, запись попадает в лог
		middleware.Metrics(opts.Metrics), // счётчики по шаблону маршрута
		middleware.Timeout(opts.Timeout), // общий дедлайн запроса
	)

	h := handlers.New(svc, opts.Metrics)
	registerRoutes(root, h, middleware.RequireBearer(svc))

	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, requireBearer middleware.Middleware) {
	// oauth
	r.Get("/oauth/authorize", h.AuthorizeForm)
	r.Post("/oauth/authorize", h.Authorize)
	r.Post("/oauth/token", h.Token)

	// registration
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)

	// открытые списки
	r.Get("/personnel", h.ListPersonnel)
	r.Get("/departments", h.ListDepartments)

	// защищённые ресурсы
	r.Group(func(r chi.Router) {
		r.Use(requireBearer)

		r.Get("/me", h.Me)

		r.Get("/personnel/{id}", h.GetEmployee)
		r.Post("/personnel/{id}", h.CreateEmployee)
		r.Put("/personnel/{id}", h.UpdateEmployee)
		r.Delete("/personnel/{id}", h.DeleteEmployee)

		r.Get("/departments/{id}", h.GetDepartment)
		r.Post("/departments/{id}", h.CreateDepartment)
		r.Put("/departments/{id}", h.UpdateDepartment)
		r.Delete("/departments/{id}", h.DeleteDepartment)
	})
}
