package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/personnel-oauth/internal/models"
)

// Departments возвращает страницу отделов.
func (s *Service) Departments(ctx context.Context, page, perPage int) ([]models.Department, Page, error) {
	const op = "service.departments.Departments"

	p, err := newPage(page, perPage)
	if err != nil {
		return nil, Page{}, fmt.Errorf("%s: %w", op, err)
	}

	items, total, err := s.storage.Departments(ctx, p.limit(), p.offset())
	if err != nil {
		return nil, Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return items, p.withTotal(total), nil
}

// Department возвращает отдел вместе с его сотрудниками.
func (s *Service) Department(ctx context.Context, id int64) (*models.Department, []models.Employee, error) {
	const op = "service.departments.Department"

	d, err := s.storage.DepartmentByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	personnel, err := s.storage.EmployeesByDepartment(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, personnel, nil
}

// CreateDepartment создаёт отдел с ID, выбранным клиентом.
func (s *Service) CreateDepartment(ctx context.Context, d *models.Department) error {
	const op = "service.departments.CreateDepartment"

	if err := validateDepartment(d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.CreateDepartment(ctx, d); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

// UpdateDepartment заменяет данные отдела.
func (s *Service) UpdateDepartment(ctx context.Context, d *models.Department) error {
	const op = "service.departments.UpdateDepartment"

	if err := validateDepartment(d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateDepartment(ctx, d); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

// DeleteDepartment удаляет отдел. Отдел с сотрудниками удалить нельзя.
func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	const op = "service.departments.DeleteDepartment"

	if err := s.storage.DeleteDepartment(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageError(err))
	}

	return nil
}

func validateDepartment(d *models.Department) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidArgument)
	}

	email, err := normalizeEmail(d.Email)
	if err != nil {
		return err
	}
	d.Email = email

	return nil
}
