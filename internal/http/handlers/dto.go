package handlers

import (
	"fmt"
	"time"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/service"
)

// dateLayout — формат hiredate в JSON.
const dateLayout = "2006-01-02"

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type profileResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func profileFromModel(u *models.User) profileResponse {
	return profileResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

type employeeResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	HireDate   string `json:"hiredate"`
	Occupation int64  `json:"occupation"`
}

func employeeFromModel(e models.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		HireDate:   e.HireDate.Format(dateLayout),
		Occupation: e.Occupation,
	}
}

// memberResponse — сотрудник в составе отдела (без occupation).
type memberResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	HireDate  string `json:"hiredate"`
}

type employeeRequest struct {
	ID         *int64 `json:"id,omitempty"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	HireDate   string `json:"hiredate"`
	Occupation int64  `json:"occupation"`
}

// toModel собирает сотрудника; id берётся из пути, id в теле должен с ним совпадать.
func (in employeeRequest) toModel(id int64) (*models.Employee, error) {
	if in.ID != nil && *in.ID != id {
		return nil, fmt.Errorf("id mismatch: %w", service.ErrInvalidArgument)
	}

	hired, err := time.Parse(dateLayout, in.HireDate)
	if err != nil {
		return nil, fmt.Errorf("hiredate: %w", service.ErrInvalidArgument)
	}

	return &models.Employee{
		ID:         id,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		HireDate:   hired,
		Occupation: in.Occupation,
	}, nil
}

type personnelPageResponse struct {
	Personnel []employeeResponse `json:"personnel"`
	PerPage   int                `json:"per_page"`
	Page      int                `json:"page"`
	PageCount int                `json:"page_count"`
}

type departmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

func departmentFromModel(d models.Department) departmentResponse {
	return departmentResponse{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
		Email:    d.Email,
	}
}

type departmentDetailResponse struct {
	departmentResponse
	Personnel []memberResponse `json:"personnel"`
}

type departmentRequest struct {
	ID       *int64 `json:"id,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

func (in departmentRequest) toModel(id int64) (*models.Department, error) {
	if in.ID != nil && *in.ID != id {
		return nil, fmt.Errorf("id mismatch: %w", service.ErrInvalidArgument)
	}

	return &models.Department{
		ID:       id,
		Name:     in.Name,
		Location: in.Location,
		Email:    in.Email,
	}, nil
}

type departmentsPageResponse struct {
	Departments []departmentResponse `json:"departments"`
	PerPage     int                  `json:"per_page"`
	Page        int                  `json:"page"`
	PageCount   int                  `json:"page_count"`
}
