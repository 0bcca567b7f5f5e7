package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// employeeColumns — единый список колонок personnel для SELECT,
// чтобы порядок сканирования всегда совпадал со scanEmployee.
const employeeColumns = `id, firstname, lastname, hiredate, occupation`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.HireDate, &e.Occupation)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]models.Employee, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
}

// Employees возвращает страницу сотрудников (ORDER BY id) и общее их количество.
func (s *Storage) Employees(ctx context.Context, limit, offset int) ([]models.Employee, int, error) {
	const op = "storage.postgres.Employees"

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM personnel`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM personnel ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return employees, total, nil
}

// EmployeesByDepartment возвращает всех сотрудников отдела.
func (s *Storage) EmployeesByDepartment(ctx context.Context, departmentID int64) ([]models.Employee, error) {
	const op = "storage.postgres.EmployeesByDepartment"

	rows, err := s.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM personnel WHERE occupation = $1 ORDER BY id`,
		departmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return employees, nil
}

// EmployeeByID находит сотрудника по ID.
func (s *Storage) EmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	const op = "storage.postgres.EmployeeByID"

	e, err := scanEmployee(s.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM personnel WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

// CreateEmployee создаёт сотрудника.
// Ошибки: storage.ErrAlreadyExists (занят id), storage.ErrForeignKey (нет отдела).
func (s *Storage) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	const op = "storage.postgres.CreateEmployee"

	query := `
		INSERT INTO personnel(id, firstname, lastname, hiredate, occupation)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.HireDate,
		employee.Occupation,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// UpdateEmployee обновляет все поля сотрудника.
// Ошибки: storage.ErrNotFound, storage.ErrForeignKey.
func (s *Storage) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	const op = "storage.postgres.UpdateEmployee"

	query := `
		UPDATE personnel
		SET firstname = $2, lastname = $3, hiredate = $4, occupation = $5
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.HireDate,
		employee.Occupation,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteEmployee удаляет сотрудника.
func (s *Storage) DeleteEmployee(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteEmployee"

	tag, err := s.db.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
