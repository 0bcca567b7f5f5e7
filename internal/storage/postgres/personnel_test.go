package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

func employee(id, dept int64) *models.Employee {
	return &models.Employee{
		ID:         id,
		FirstName:  "John",
		LastName:   "Doe",
		HireDate:   time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		Occupation: dept,
	}
}

func TestIntegration_Employee_CRUD(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedDepartment(t, st, 1)
	seedDepartment(t, st, 2)

	e := employee(10, 1)
	require.NoError(t, st.CreateEmployee(ctx, e))
	require.ErrorIs(t, st.CreateEmployee(ctx, e), storage.ErrAlreadyExists)

	got, err := st.EmployeeByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, e.FirstName, got.FirstName)
	require.Equal(t, e.Occupation, got.Occupation)
	require.True(t, e.HireDate.Equal(got.HireDate))

	e.Occupation = 2
	e.LastName = "Smith"
	require.NoError(t, st.UpdateEmployee(ctx, e))

	got, err = st.EmployeeByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, "Smith", got.LastName)
	require.EqualValues(t, 2, got.Occupation)

	require.NoError(t, st.DeleteEmployee(ctx, 10))
	require.ErrorIs(t, st.DeleteEmployee(ctx, 10), storage.ErrNotFound)

	_, err = st.EmployeeByID(ctx, 10)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Employee_MissingDepartment(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	require.ErrorIs(t, st.CreateEmployee(ctx, employee(1, 99)), storage.ErrForeignKey)

	seedDepartment(t, st, 1)
	require.NoError(t, st.CreateEmployee(ctx, employee(1, 1)))
	require.ErrorIs(t, st.UpdateEmployee(ctx, employee(1, 99)), storage.ErrForeignKey)

	// Отсутствующий сотрудник важнее отсутствующего отдела.
	require.ErrorIs(t, st.UpdateEmployee(ctx, employee(2, 99)), storage.ErrNotFound)
}

func TestIntegration_Employees_Paging(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedDepartment(t, st, 1)
	for id := int64(1); id <= 5; id++ {
		require.NoError(t, st.CreateEmployee(ctx, employee(id, 1)))
	}

	page, total, err := st.Employees(ctx, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, page, 2)
	require.EqualValues(t, 3, page[0].ID)
	require.EqualValues(t, 4, page[1].ID)

	page, total, err = st.Employees(ctx, 2, 10)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Empty(t, page)

	byDept, err := st.EmployeesByDepartment(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byDept, 5)
}

func TestIntegration_Department_CRUD_And_InUse(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedDepartment(t, st, 1)
	require.ErrorIs(t, st.CreateDepartment(ctx, &models.Department{ID: 1, Name: "dup"}), storage.ErrAlreadyExists)

	d := &models.Department{ID: 1, Name: "R&D", Location: "Lab", Email: "rnd@example.com"}
	require.NoError(t, st.UpdateDepartment(ctx, d))
	require.ErrorIs(t, st.UpdateDepartment(ctx, &models.Department{ID: 2, Name: "x"}), storage.ErrNotFound)

	got, err := st.DepartmentByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, d, got)

	require.NoError(t, st.CreateEmployee(ctx, employee(1, 1)))
	require.ErrorIs(t, st.DeleteDepartment(ctx, 1), storage.ErrInUse)

	require.NoError(t, st.DeleteEmployee(ctx, 1))
	require.NoError(t, st.DeleteDepartment(ctx, 1))
	require.ErrorIs(t, st.DeleteDepartment(ctx, 1), storage.ErrNotFound)

	list, total, err := st.Departments(ctx, 10, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, list)
}
