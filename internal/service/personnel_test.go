package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
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

func TestEmployees_Paging(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().Employees(gomock.Any(), 10, 20).Return([]models.Employee{*employee(21, 1)}, 21, nil)

	items, page, err := svc.Employees(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, Page{Page: 2, PerPage: 10, PageCount: 3}, page)
}

func TestEmployees_InvalidPage(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.Employees(context.Background(), -1, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmployeeErrors(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().EmployeeByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)
	_, err := svc.Employee(ctx, 7)
	require.ErrorIs(t, err, ErrNotFound)

	st.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	require.ErrorIs(t, svc.CreateEmployee(ctx, employee(1, 1)), ErrAlreadyExists)

	st.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(storage.ErrForeignKey)
	require.ErrorIs(t, svc.CreateEmployee(ctx, employee(2, 99)), ErrDepartmentNotFound)

	st.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
	require.ErrorIs(t, svc.UpdateEmployee(ctx, employee(3, 1)), ErrNotFound)

	st.EXPECT().DeleteEmployee(gomock.Any(), int64(4)).Return(storage.ErrNotFound)
	require.ErrorIs(t, svc.DeleteEmployee(ctx, 4), ErrNotFound)

	// Невалидное тело — без обращения к хранилищу.
	bad := employee(5, 1)
	bad.FirstName = "  "
	require.ErrorIs(t, svc.CreateEmployee(ctx, bad), ErrInvalidArgument)

	bad = employee(6, 1)
	bad.HireDate = time.Time{}
	require.ErrorIs(t, svc.UpdateEmployee(ctx, bad), ErrInvalidArgument)
}

func TestDepartment_WithPersonnel(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().DepartmentByID(gomock.Any(), int64(1)).Return(&models.Department{ID: 1, Name: "R&D"}, nil)
	st.EXPECT().EmployeesByDepartment(gomock.Any(), int64(1)).Return([]models.Employee{*employee(1, 1), *employee(2, 1)}, nil)

	d, personnel, err := svc.Department(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "R&D", d.Name)
	require.Len(t, personnel, 2)
}

func TestDepartmentErrors(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().DepartmentByID(gomock.Any(), int64(9)).Return(nil, storage.ErrNotFound)
	_, _, err := svc.Department(ctx, 9)
	require.ErrorIs(t, err, ErrNotFound)

	st.EXPECT().DeleteDepartment(gomock.Any(), int64(1)).Return(storage.ErrInUse)
	require.ErrorIs(t, svc.DeleteDepartment(ctx, 1), ErrDepartmentNotEmpty)

	st.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	require.ErrorIs(t, svc.CreateDepartment(ctx, &models.Department{ID: 1, Name: "Ops"}), ErrAlreadyExists)

	st.EXPECT().UpdateDepartment(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
	require.ErrorIs(t, svc.UpdateDepartment(ctx, &models.Department{ID: 2, Name: "Ops"}), ErrNotFound)

	require.ErrorIs(t, svc.CreateDepartment(ctx, &models.Department{ID: 3}), ErrInvalidArgument)
	require.ErrorIs(t, svc.CreateDepartment(ctx, &models.Department{ID: 3, Name: "Ops", Email: "bad"}), ErrInvalidArgument)
}

func TestDepartments_Paging(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().Departments(gomock.Any(), MaxPerPage, 0).Return(nil, 0, nil)

	items, page, err := svc.Departments(context.Background(), 0, 1000)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Equal(t, Page{Page: 0, PerPage: MaxPerPage, PageCount: 0}, page)
}
