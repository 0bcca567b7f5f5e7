package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/personnel-oauth/internal/metrics"
	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/service"
)

// maxBodyBytes — предел размера JSON-тела запроса.
const maxBodyBytes = 1 << 20

// Service — операции бизнес-слоя, которые нужны хендлерам.
type Service interface {
	CheckAuthorizeRequest(ctx context.Context, clientID, responseType string) (*models.Client, error)
	Authorize(ctx context.Context, req service.AuthorizeRequest) (*models.Client, string, error)
	Token(ctx context.Context, req service.TokenRequest) (*models.TokenPair, error)

	RegisterUser(ctx context.Context, r service.Registration) (*models.User, error)
	Profile(ctx context.Context, username string) (*models.User, error)

	Employees(ctx context.Context, page, perPage int) ([]models.Employee, service.Page, error)
	Employee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, e *models.Employee) error
	UpdateEmployee(ctx context.Context, e *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error

	Departments(ctx context.Context, page, perPage int) ([]models.Department, service.Page, error)
	Department(ctx context.Context, id int64) (*models.Department, []models.Employee, error)
	CreateDepartment(ctx context.Context, d *models.Department) error
	UpdateDepartment(ctx context.Context, d *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	svc     Service
	metrics *metrics.Metrics
}

// New создаёт хендлеры. m может быть nil.
func New(svc Service, m *metrics.Metrics) *Handlers {
	return &Handlers{svc: svc, metrics: m}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("decode body: %w", service.ErrInvalidArgument)
	}
	return nil
}

// pathID разбирает целочисленный {id} из пути.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path id: %w", service.ErrInvalidArgument)
	}
	return id, nil
}

// queryInt читает неотрицательный целый параметр запроса; пустой даёт def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("query %s: %w", name, service.ErrInvalidArgument)
	}
	return v, nil
}

// pageParams читает page/per_page.
func pageParams(r *http.Request) (int, int, error) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return 0, 0, err
	}

	perPage, err := queryInt(r, "per_page", service.DefaultPerPage)
	if err != nil {
		return 0, 0, err
	}

	return page, perPage, nil
}
