// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя (sentinel из internal/service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Для OAuth-эндпоинтов отдельный формат: {"error":"<oauth code>"}.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/personnel-oauth/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// OAuth-коды ошибок.
const (
	OAuthInvalidRequest          = "invalid_request"
	OAuthInvalidClient           = "invalid_client"
	OAuthInvalidGrant            = "invalid_grant"
	OAuthUnsupportedGrantType    = "unsupported_grant_type"
	OAuthUnsupportedResponseType = "unsupported_response_type"
	OAuthAccessDenied            = "access_denied"
	OAuthServerError             = "server_error"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// OAuthErrorResponse — тело ошибки token-эндпоинта.
type OAuthErrorResponse struct {
	Error string `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	httpStatus, code, msg := baseFromService(err)
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// OAuthCode возвращает OAuth-код ошибки и HTTP-статус token-эндпоинта.
// Всё, что не является OAuth-ошибкой, становится server_error/500.
func OAuthCode(err error) (string, int) {
	switch {
	case stderrors.Is(err, service.ErrInvalidRequest):
		return OAuthInvalidRequest, http.StatusBadRequest
	case stderrors.Is(err, service.ErrInvalidClient):
		return OAuthInvalidClient, http.StatusBadRequest
	case stderrors.Is(err, service.ErrInvalidGrant):
		return OAuthInvalidGrant, http.StatusBadRequest
	case stderrors.Is(err, service.ErrUnsupportedGrantType):
		return OAuthUnsupportedGrantType, http.StatusBadRequest
	case stderrors.Is(err, service.ErrUnsupportedResponseType):
		return OAuthUnsupportedResponseType, http.StatusBadRequest
	case stderrors.Is(err, service.ErrAccessDenied):
		return OAuthAccessDenied, http.StatusBadRequest
	default:
		return OAuthServerError, http.StatusInternalServerError
	}
}

// SetNoCache выставляет заголовки, запрещающие кэширование ответа.
func SetNoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteOAuthError пишет ошибку token-эндпоинта: {"error":"<code>"} без кэширования.
func WriteOAuthError(w http.ResponseWriter, err error) {
	code, status := OAuthCode(err)

	SetNoCache(w)
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(OAuthErrorResponse{Error: code})
}

// baseFromService — маппинг ошибок сервиса в HTTP/FE-код/сообщение:
//   - InvalidArgument, DepartmentNotFound -> 400
//   - Forbidden -> 403
//   - NotFound -> 404
//   - DepartmentNotEmpty -> 405
//   - AlreadyExists, UsernameTaken -> 409
//   - context.Canceled -> 499
//   - context.DeadlineExceeded -> 504
//   - прочее -> 500/internal
func baseFromService(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrDepartmentNotFound):
		return http.StatusBadRequest, "department_not_found", "department not found"
	case stderrors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden", "forbidden"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, service.ErrDepartmentNotEmpty):
		return http.StatusMethodNotAllowed, "department_not_empty", "department has personnel"
	case stderrors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, "username_taken", "username already taken"
	case stderrors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
