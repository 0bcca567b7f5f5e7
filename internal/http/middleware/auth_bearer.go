package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
	"github.com/pribylovaa/personnel-oauth/internal/models"
	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/service"
)

type identityKey struct{}

// Validator проверяет bearer-токен.
type Validator interface {
	ValidateAccessToken(ctx context.Context, token string) (models.Identity, error)
}

// RequireBearer пропускает запрос дальше только с действующим bearer-токеном.
// Недействительный токен: 403 без тела, обработчик не вызывается.
// Действующий: Identity кладётся в контекст (см. IdentityFrom),
// а логгер запроса дополняется username.
func RequireBearer(v Validator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := v.ValidateAccessToken(r.Context(), BearerToken(r))
			if err != nil {
				if errors.Is(err, service.ErrForbidden) {
					w.WriteHeader(http.StatusForbidden)
					return
				}

				logctx.From(r.Context()).Error("bearer_validation_failed", slog.String("err", err.Error()))
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, id)
			ctx = logctx.With(ctx, slog.String("username", id.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom возвращает владельца токена, положенного RequireBearer.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(models.Identity)
	return id, ok
}

// BearerToken извлекает токен из "Authorization: Bearer <token>".
// Отсутствующий или иной заголовок даёт пустую строку.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
