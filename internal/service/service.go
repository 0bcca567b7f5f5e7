// service содержит бизнес-логику сервиса:
// выпуск кодов авторизации, выпуск и ротацию пар токенов, проверку
// bearer-токенов, регистрацию пользователей и CRUD над сотрудниками и отделами.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования, если потокобезопасно хранилище.
//   - Атомарность погашения кода и ротации refresh-токена обеспечивает
//     хранилище (одна транзакция на операцию).
//   - Ошибки возвращаются как sentinel-значения ниже и далее маппятся
//     транспортом на HTTP-статусы и OAuth-коды (см. internal/errors).
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/personnel-oauth/internal/cache"
	"github.com/pribylovaa/personnel-oauth/internal/config"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

var (
	// ErrInvalidClient — клиент не найден или секрет не совпал.
	// OAuth: invalid_client (HTTP 400); на authorize — страница ошибки без редиректа.
	ErrInvalidClient = errors.New("invalid client")

	// ErrInvalidGrant — код или refresh-токен не найден, уже погашен или просрочен.
	// OAuth: invalid_grant (HTTP 400).
	ErrInvalidGrant = errors.New("invalid grant")

	// ErrInvalidRequest — не хватает обязательного параметра.
	// OAuth: invalid_request (HTTP 400).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedGrantType — grant_type не authorization_code и не refresh_token.
	// OAuth: unsupported_grant_type (HTTP 400).
	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	// ErrAccessDenied — владелец ресурса не прошёл проверку логина/пароля.
	// OAuth: редирект с error=access_denied.
	ErrAccessDenied = errors.New("access denied")

	// ErrUnsupportedResponseType — response_type отличен от "code".
	// OAuth: редирект с error=unsupported_response_type.
	ErrUnsupportedResponseType = errors.New("unsupported response type")

	// ErrForbidden — bearer-токен отсутствует, неизвестен или просрочен.
	// HTTP 403 без тела.
	ErrForbidden = errors.New("forbidden")

	// ErrTokenCollision — исчерпаны попытки сгенерировать уникальный код/токен.
	// HTTP 500.
	ErrTokenCollision = errors.New("token collision")

	// ErrInvalidArgument — некорректные входные данные. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — запрошенная сущность не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — сущность с таким ключом уже есть. HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUsernameTaken — имя пользователя занято. HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrDepartmentNotFound — сотрудник ссылается на несуществующий отдел. HTTP 400.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrDepartmentNotEmpty — в отделе ещё есть сотрудники. HTTP 405.
	ErrDepartmentNotEmpty = errors.New("department has personnel")
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.OAuthConfig
	acache  cache.AccessCache // может быть nil, если кэш не сконфигурирован

	now      func() time.Time
	newToken func() string
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.OAuthConfig) *Service {
	return &Service{
		storage:  storage,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newToken: generateToken,
	}
}

// SetAccessCache устанавливает кэш access-токенов (опционально).
func (s *Service) SetAccessCache(c cache.AccessCache) {
	s.acache = c
}
