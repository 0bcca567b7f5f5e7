package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// SaveClient сохраняет нового клиента.
func (s *Storage) SaveClient(ctx context.Context, client *models.Client) error {
	const op = "storage.postgres.SaveClient"

	query := `
		INSERT INTO clients(client_id, client_secret_hash, redirect_uri)
		VALUES ($1, $2, $3)
	`

	if _, err := s.db.Exec(ctx, query, client.ClientID, client.ClientSecretHash, client.RedirectURI); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// ClientByID находит клиента по client_id.
func (s *Storage) ClientByID(ctx context.Context, clientID string) (*models.Client, error) {
	const op = "storage.postgres.ClientByID"

	query := `
		SELECT client_id, client_secret_hash, redirect_uri
		FROM clients
		WHERE client_id = $1
	`

	var client models.Client
	err := s.db.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.ClientSecretHash,
		&client.RedirectURI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &client, nil
}

// Clients возвращает всех клиентов.
func (s *Storage) Clients(ctx context.Context) ([]models.Client, error) {
	const op = "storage.postgres.Clients"

	rows, err := s.db.Query(ctx, `
		SELECT client_id, client_secret_hash, redirect_uri
		FROM clients
		ORDER BY client_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		var c models.Client
		err := row.Scan(&c.ClientID, &c.ClientSecretHash, &c.RedirectURI)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return clients, nil
}

// DeleteClient удаляет клиента.
func (s *Storage) DeleteClient(ctx context.Context, clientID string) error {
	const op = "storage.postgres.DeleteClient"

	tag, err := s.db.Exec(ctx, `DELETE FROM clients WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
