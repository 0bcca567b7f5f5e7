// storage задаёт контракты хранилища сервиса. Хранилище — единственный
// источник истины: операции ротации (погашение кода, обмен refresh-токена)
// обязаны выполняться атомарно на его стороне.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/personnel-oauth/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (PK/UNIQUE).
	ErrAlreadyExists = errors.New("already exists")
	// ErrExpired — сущность просрочена (authorization code).
	ErrExpired = errors.New("expired")
	// ErrForeignKey — ссылка на несуществующую запись (например, отдел сотрудника).
	ErrForeignKey = errors.New("foreign key violation")
	// ErrInUse — запись нельзя удалить, пока на неё ссылаются другие.
	ErrInUse = errors.New("in use")
)

// ClientStorage — операции над OAuth-клиентами.
type ClientStorage interface {
	// SaveClient сохраняет нового клиента.
	SaveClient(ctx context.Context, client *models.Client) error
	// ClientByID находит клиента по client_id.
	ClientByID(ctx context.Context, clientID string) (*models.Client, error)
	// Clients возвращает всех клиентов, упорядоченных по client_id.
	Clients(ctx context.Context) ([]models.Client, error)
	// DeleteClient удаляет клиента.
	DeleteClient(ctx context.Context, clientID string) error
}

// UserStorage — операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByUsername находит пользователя по имени.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// OAuthStorage — операции над кодами авторизации и парами токенов.
type OAuthStorage interface {
	// SaveAuthorizationCode сохраняет новый код авторизации.
	SaveAuthorizationCode(ctx context.Context, code *models.AuthorizationCode) error
	// ExchangeAuthorizationCode в одной транзакции погашает код (ErrNotFound/ErrExpired,
	// если погасить нельзя) и сохраняет next от имени владельца кода.
	// При успехе next.Username заполняется владельцем.
	ExchangeAuthorizationCode(ctx context.Context, codeHash string, now time.Time, next *models.TokenRecord) error
	// RotateTokenPair в одной транзакции удаляет пару по хэшу refresh-токена
	// (ErrNotFound, если её уже нет) и сохраняет next от имени того же пользователя.
	// Возвращает хэш access-токена удалённой пары.
	RotateTokenPair(ctx context.Context, refreshHash string, next *models.TokenRecord) (string, error)
	// TokenByAccessHash находит пару по хэшу access-токена.
	TokenByAccessHash(ctx context.Context, accessHash string) (*models.TokenRecord, error)
	// DeleteExpiredCodes удаляет коды с expires_at < now.
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
	// DeleteStaleTokens удаляет пары, у которых access-токен истёк до before.
	DeleteStaleTokens(ctx context.Context, before time.Time) (int64, error)
}

// PersonnelStorage — операции над сотрудниками.
type PersonnelStorage interface {
	// Employees возвращает страницу сотрудников и общее их количество.
	Employees(ctx context.Context, limit, offset int) ([]models.Employee, int, error)
	// EmployeesByDepartment возвращает всех сотрудников отдела.
	EmployeesByDepartment(ctx context.Context, departmentID int64) ([]models.Employee, error)
	// EmployeeByID находит сотрудника по ID.
	EmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	// CreateEmployee создаёт сотрудника (ErrAlreadyExists, ErrForeignKey).
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	// UpdateEmployee обновляет сотрудника (ErrNotFound, ErrForeignKey).
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	// DeleteEmployee удаляет сотрудника (ErrNotFound).
	DeleteEmployee(ctx context.Context, id int64) error
}

// DepartmentStorage — операции над отделами.
type DepartmentStorage interface {
	// Departments возвращает страницу отделов и общее их количество.
	Departments(ctx context.Context, limit, offset int) ([]models.Department, int, error)
	// DepartmentByID находит отдел по ID.
	DepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	// CreateDepartment создаёт отдел (ErrAlreadyExists).
	CreateDepartment(ctx context.Context, department *models.Department) error
	// UpdateDepartment обновляет отдел (ErrNotFound).
	UpdateDepartment(ctx context.Context, department *models.Department) error
	// DeleteDepartment удаляет отдел (ErrNotFound, ErrInUse).
	DeleteDepartment(ctx context.Context, id int64) error
}

// Storage задаёт полный контракт работы с БД.
type Storage interface {
	ClientStorage
	UserStorage
	OAuthStorage
	PersonnelStorage
	DepartmentStorage
	Ping(ctx context.Context) error
	Close()
}
