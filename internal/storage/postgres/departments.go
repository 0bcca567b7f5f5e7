package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

const departmentColumns = `id, name, location, email`

func scanDepartment(row pgx.Row) (models.Department, error) {
	var d models.Department
	err := row.Scan(&d.ID, &d.Name, &d.Location, &d.Email)
	return d, err
}

// Departments возвращает страницу отделов (ORDER BY id) и общее их количество.
func (s *Storage) Departments(ctx context.Context, limit, offset int) ([]models.Department, int, error) {
	const op = "storage.postgres.Departments"

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM departments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+departmentColumns+` FROM departments ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	departments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		return scanDepartment(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return departments, total, nil
}

// DepartmentByID находит отдел по ID.
func (s *Storage) DepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	const op = "storage.postgres.DepartmentByID"

	d, err := scanDepartment(s.db.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &d, nil
}

// CreateDepartment создаёт отдел. Ошибки: storage.ErrAlreadyExists.
func (s *Storage) CreateDepartment(ctx context.Context, department *models.Department) error {
	const op = "storage.postgres.CreateDepartment"

	_, err := s.db.Exec(ctx, `
		INSERT INTO departments(id, name, location, email)
		VALUES ($1, $2, $3, $4)
	`, department.ID, department.Name, department.Location, department.Email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// UpdateDepartment обновляет отдел. Ошибки: storage.ErrNotFound.
func (s *Storage) UpdateDepartment(ctx context.Context, department *models.Department) error {
	const op = "storage.postgres.UpdateDepartment"

	tag, err := s.db.Exec(ctx, `
		UPDATE departments
		SET name = $2, location = $3, email = $4
		WHERE id = $1
	`, department.ID, department.Name, department.Location, department.Email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteDepartment удаляет отдел.
// Отдел с сотрудниками удалить нельзя (FK ON DELETE RESTRICT): storage.ErrInUse.
func (s *Storage) DeleteDepartment(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteDepartment"

	tag, err := s.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(mapError(err), storage.ErrForeignKey) {
			return fmt.Errorf("%s: %w", op, storage.ErrInUse)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
