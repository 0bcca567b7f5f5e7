package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page описывает страницу списка. Page начинается с нуля.
type Page struct {
	Page      int
	PerPage   int
	PageCount int
}

// newPage проверяет параметры пагинации; per_page больше MaxPerPage урезается.
func newPage(page, perPage int) (Page, error) {
	if page < 0 || perPage < 1 {
		return Page{}, ErrInvalidArgument
	}

	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Page{Page: page, PerPage: perPage}, nil
}

func (p Page) limit() int  { return p.PerPage }
func (p Page) offset() int { return p.Page * p.PerPage }

// withTotal считает число страниц: ceil(total/per_page).
func (p Page) withTotal(total int) Page {
	p.PageCount = (total + p.PerPage - 1) / p.PerPage
	return p
}

// Employees возвращает страницу сотрудников.
func (s *Service) Employees(ctx context.Context, page, perPage int) ([]models.Employee, Page, error) {
	const op = "service.personnel.Employees"

	p, err := newPage(page, perPage)
	if err != nil {
		return nil, Page{}, fmt.Errorf("%s: %w", op, err)
	}

	items, total, err := s.storage.Employees(ctx, p.limit(), p.offset())
	if err != nil {
		return nil, Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return items, p.withTotal(total), nil
}

// Employee возвращает сотрудника по ID.
func (s *Service) Employee(ctx context.Context, id int64) (*models.Employee, error) {
	const op = "service.personnel.Employee"

	e, err := s.storage.EmployeeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return e, nil
}

// CreateEmployee создаёт сотрудника с ID, выбранным клиентом.
func (s *Service) CreateEmployee(ctx context.Context, e *models.Employee) error {
	const op = "service.personnel.CreateEmployee"

	if err := validateEmployee(e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.CreateEmployee(ctx, e); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

// UpdateEmployee заменяет данные сотрудника.
func (s *Service) UpdateEmployee(ctx context.Context, e *models.Employee) error {
	const op = "service.personnel.UpdateEmployee"

	if err := validateEmployee(e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateEmployee(ctx, e); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

// DeleteEmployee удаляет сотрудника.
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	const op = "service.personnel.DeleteEmployee"

	if err := s.storage.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

func validateEmployee(e *models.Employee) error {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)

	switch {
	case e.FirstName == "" || e.LastName == "":
		return fmt.Errorf("name is required: %w", ErrInvalidArgument)
	case e.HireDate.IsZero():
		return fmt.Errorf("hire date is required: %w", ErrInvalidArgument)
	}

	return nil
}

// mapStorageError переводит ошибки хранилища CRUD-операций в ошибки сервиса.
func mapStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return ErrAlreadyExists
	case errors.Is(err, storage.ErrForeignKey):
		return ErrDepartmentNotFound
	case errors.Is(err, storage.ErrInUse):
		return ErrDepartmentNotEmpty
	default:
		return err
	}
}
