package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/pkg/redact"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// maxSecretLen — bcrypt учитывает не больше 72 байт входа.
const maxSecretLen = 72

// Registration — данные формы регистрации.
type Registration struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// RegisterUser регистрирует нового пользователя.
func (s *Service) RegisterUser(ctx context.Context, r Registration) (*models.User, error) {
	const op = "service.users.RegisterUser"

	username := strings.TrimSpace(r.Username)
	if username == "" {
		return nil, fmt.Errorf("%s: username is required: %w", op, ErrInvalidArgument)
	}

	if err := validateSecret(r.Password); err != nil {
		return nil, fmt.Errorf("%s: password: %w", op, err)
	}

	email, err := normalizeEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hashPassword(r.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Username:     username,
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(r.Phone),
		PasswordHash: hash,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	attrs := []any{slog.String("username", user.Username)}
	if user.Email != "" {
		attrs = append(attrs, slog.String("email", redact.Email(user.Email)))
	}
	log.From(ctx).Info("user_registered", attrs...)

	return user, nil
}

// Profile возвращает профиль пользователя по имени.
func (s *Service) Profile(ctx context.Context, username string) (*models.User, error) {
	const op = "service.users.Profile"

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// RegisterClient заводит OAuth-клиента. Секрет сохраняется bcrypt-хэшем.
func (s *Service) RegisterClient(ctx context.Context, clientID, secret, redirectURI string) (*models.Client, error) {
	const op = "service.users.RegisterClient"

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("%s: client id is required: %w", op, ErrInvalidArgument)
	}

	if err := validateSecret(secret); err != nil {
		return nil, fmt.Errorf("%s: secret: %w", op, err)
	}

	u, err := url.Parse(redirectURI)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Fragment != "" {
		return nil, fmt.Errorf("%s: redirect uri must be absolute: %w", op, ErrInvalidArgument)
	}

	hash, err := s.hashPassword(secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := &models.Client{
		ClientID:         clientID,
		ClientSecretHash: hash,
		RedirectURI:      redirectURI,
	}

	if err := s.storage.SaveClient(ctx, client); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("client_registered",
		slog.String("client_id", clientID),
		slog.String("secret", redact.Secret()),
	)

	return client, nil
}

// DeleteClient удаляет OAuth-клиента.
func (s *Service) DeleteClient(ctx context.Context, clientID string) error {
	const op = "service.users.DeleteClient"

	if err := s.storage.DeleteClient(ctx, clientID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clients возвращает всех клиентов.
func (s *Service) Clients(ctx context.Context) ([]models.Client, error) {
	const op = "service.users.Clients"

	clients, err := s.storage.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return clients, nil
}

// hashPassword хэширует пароль (или секрет клиента) с помощью bcrypt.
func (s *Service) hashPassword(password string) (string, error) {
	const op = "service.users.hashPassword"

	cost := s.cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateSecret проверяет пароль/секрет: непустой и помещается в bcrypt.
func validateSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("empty: %w", ErrInvalidArgument)
	}

	if len(secret) > maxSecretLen {
		return fmt.Errorf("longer than %d bytes: %w", maxSecretLen, ErrInvalidArgument)
	}

	return nil
}

// normalizeEmail проверяет e-mail, если он указан, и обрезает пробелы снаружи.
func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email: %w", ErrInvalidArgument)
	}

	return email, nil
}
