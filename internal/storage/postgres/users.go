package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(username, firstname, lastname, email, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// UserByUsername находит пользователя по имени.
func (s *Storage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.UserByUsername"

	query := `
		SELECT username, firstname, lastname, email, phone, password_hash
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := s.db.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}
