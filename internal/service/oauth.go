package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/pkg/redact"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

const (
	// ResponseTypeCode — единственный поддерживаемый response_type.
	ResponseTypeCode = "code"

	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// AuthorizeRequest — данные формы входа владельца ресурса.
type AuthorizeRequest struct {
	ClientID string
	Username string
	Password string
}

// TokenRequest — параметры token-эндпоинта.
type TokenRequest struct {
	GrantType    string
	ClientID     string
	ClientSecret string
	Code         string
	RefreshToken string
}

// CheckAuthorizeRequest проверяет начальный GET authorize-запроса.
// Неизвестный клиент: (nil, ErrInvalidClient). Для известного клиента клиент
// возвращается всегда, чтобы транспорт мог сделать редирект с ошибкой.
func (s *Service) CheckAuthorizeRequest(ctx context.Context, clientID, responseType string) (*models.Client, error) {
	const op = "service.oauth.CheckAuthorizeRequest"

	client, err := s.client(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if responseType != ResponseTypeCode {
		return client, fmt.Errorf("%s: %w", op, ErrUnsupportedResponseType)
	}

	return client, nil
}

// Authorize проверяет логин/пароль владельца ресурса и выпускает код авторизации.
// Возвращает клиента (nil только при ErrInvalidClient) и открытое значение кода.
func (s *Service) Authorize(ctx context.Context, req AuthorizeRequest) (*models.Client, string, error) {
	const op = "service.oauth.Authorize"

	lg := log.From(ctx)

	client, err := s.client(ctx, req.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if req.Username == "" || req.Password == "" {
		return client, "", fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}

	user, err := s.storage.UserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("authorize_denied",
				slog.String("op", op),
				slog.String("client_id", client.ClientID),
				slog.String("reason", "unknown_user"),
			)
			return client, "", fmt.Errorf("%s: %w", op, ErrAccessDenied)
		}

		return client, "", fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		lg.Info("authorize_denied",
			slog.String("op", op),
			slog.String("client_id", client.ClientID),
			slog.String("username", user.Username),
			slog.String("reason", "bad_password"),
		)
		return client, "", fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		plain := s.newToken()
		code := &models.AuthorizationCode{
			CodeHash:  hashToken(plain),
			Username:  user.Username,
			ExpiresAt: s.now().Add(s.cfg.CodeTTL),
		}

		if err := s.storage.SaveAuthorizationCode(ctx, code); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_code_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return client, "", fmt.Errorf("%s: %w", op, err)
		}

		lg.Info("code_issued",
			slog.String("client_id", client.ClientID),
			slog.String("username", user.Username),
			slog.String("code", redact.Token(plain)),
		)

		return client, plain, nil
	}

	lg.Error("code_collision_exceeded", slog.String("op", op))

	return client, "", fmt.Errorf("%s: %w", op, ErrTokenCollision)
}

// Token обрабатывает запрос token-эндпоинта.
//
// Порядок проверок: пустой grant_type, аутентификация клиента, тип гранта,
// обязательный параметр гранта, затем атомарная ротация в хранилище.
func (s *Service) Token(ctx context.Context, req TokenRequest) (*models.TokenPair, error) {
	const op = "service.oauth.Token"

	if req.GrantType == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRequest)
	}

	if err := s.authenticateClient(ctx, req.ClientID, req.ClientSecret); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch req.GrantType {
	case GrantTypeAuthorizationCode:
		if req.Code == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRequest)
		}

		return s.exchangeCode(ctx, req.Code)
	case GrantTypeRefreshToken:
		if req.RefreshToken == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRequest)
		}

		return s.refresh(ctx, req.RefreshToken)
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedGrantType)
	}
}

// exchangeCode погашает код авторизации и выпускает пару токенов его владельцу.
func (s *Service) exchangeCode(ctx context.Context, code string) (*models.TokenPair, error) {
	const op = "service.oauth.exchangeCode"

	lg := log.From(ctx)
	codeHash := hashToken(code)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		now := s.now()
		pair, record := s.newTokenPair(now)

		err := s.storage.ExchangeAuthorizationCode(ctx, codeHash, now, record)
		switch {
		case err == nil:
			pair.Username = record.Username
			lg.Info("token_issued",
				slog.String("grant_type", GrantTypeAuthorizationCode),
				slog.String("username", pair.Username),
			)
			return pair, nil
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrExpired):
			lg.Info("code_rejected",
				slog.String("op", op),
				slog.String("code", redact.Token(code)),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidGrant)
		case errors.Is(err, storage.ErrAlreadyExists):
			// Коллизия токена: транзакция откатилась, код ещё жив.
			continue
		default:
			lg.Error("code_exchange_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Error("token_collision_exceeded", slog.String("op", op))

	return nil, fmt.Errorf("%s: %w", op, ErrTokenCollision)
}

// refresh заменяет пару по refresh-токену на новую.
func (s *Service) refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.oauth.refresh"

	lg := log.From(ctx)
	refreshHash := hashToken(refreshToken)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		pair, record := s.newTokenPair(s.now())

		oldAccessHash, err := s.storage.RotateTokenPair(ctx, refreshHash, record)
		switch {
		case err == nil:
			s.evictAccess(ctx, oldAccessHash)
			pair.Username = record.Username
			lg.Info("token_issued",
				slog.String("grant_type", GrantTypeRefreshToken),
				slog.String("username", pair.Username),
			)
			return pair, nil
		case errors.Is(err, storage.ErrNotFound):
			lg.Info("refresh_rejected",
				slog.String("op", op),
				slog.String("refresh_token", redact.Token(refreshToken)),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidGrant)
		case errors.Is(err, storage.ErrAlreadyExists):
			continue
		default:
			lg.Error("refresh_rotation_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Error("token_collision_exceeded", slog.String("op", op))

	return nil, fmt.Errorf("%s: %w", op, ErrTokenCollision)
}

// client находит клиента по client_id.
func (s *Service) client(ctx context.Context, clientID string) (*models.Client, error) {
	if clientID == "" {
		return nil, ErrInvalidClient
	}

	client, err := s.storage.ClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidClient
		}

		return nil, err
	}

	return client, nil
}

// authenticateClient сверяет client_secret с bcrypt-хэшем клиента.
func (s *Service) authenticateClient(ctx context.Context, clientID, secret string) error {
	client, err := s.client(ctx, clientID)
	if err != nil {
		return err
	}

	if !checkPassword(client.ClientSecretHash, secret) {
		log.From(ctx).Info("client_auth_failed", slog.String("client_id", clientID))
		return ErrInvalidClient
	}

	return nil
}
