package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// execer — общее подмножество pgxpool.Pool и pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SaveAuthorizationCode сохраняет новый код авторизации.
func (s *Storage) SaveAuthorizationCode(ctx context.Context, code *models.AuthorizationCode) error {
	const op = "storage.postgres.SaveAuthorizationCode"

	query := `
		INSERT INTO authorization_codes(code_hash, username, expires_at)
		VALUES ($1, $2, $3)
	`

	if _, err := s.db.Exec(ctx, query, code.CodeHash, code.Username, code.ExpiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// ExchangeAuthorizationCode погашает код и сохраняет новую пару токенов в одной транзакции.
//
// Строка кода блокируется SELECT ... FOR UPDATE: конкурентный обмен того же кода
// дождётся фиксации первой транзакции и не найдёт строку (ErrNotFound).
// Просроченный код не удаляется (ErrExpired, транзакция откатывается).
func (s *Storage) ExchangeAuthorizationCode(ctx context.Context, codeHash string, now time.Time, next *models.TokenRecord) error {
	const op = "storage.postgres.ExchangeAuthorizationCode"

	err := pgx.BeginTxFunc(ctx, s.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var (
			username  string
			expiresAt time.Time
		)

		err := tx.QueryRow(ctx, `
			SELECT username, expires_at
			FROM authorization_codes
			WHERE code_hash = $1
			FOR UPDATE
		`, codeHash).Scan(&username, &expiresAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}

			return err
		}

		if expiresAt.Before(now) {
			return storage.ErrExpired
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authorization_codes WHERE code_hash = $1`, codeHash); err != nil {
			return err
		}

		next.Username = username

		return insertToken(ctx, tx, next)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

// RotateTokenPair удаляет пару по refresh-токену и сохраняет новую в одной транзакции.
//
// DELETE ... RETURNING берёт блокировку строки: из двух конкурентных ротаций
// одного refresh-токена вторая увидит, что строки уже нет, и получит ErrNotFound.
func (s *Storage) RotateTokenPair(ctx context.Context, refreshHash string, next *models.TokenRecord) (string, error) {
	const op = "storage.postgres.RotateTokenPair"

	var oldAccessHash string

	err := pgx.BeginTxFunc(ctx, s.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var username string

		err := tx.QueryRow(ctx, `
			DELETE FROM tokens
			WHERE refresh_token_hash = $1
			RETURNING username, access_token_hash
		`, refreshHash).Scan(&username, &oldAccessHash)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}

			return err
		}

		next.Username = username

		return insertToken(ctx, tx, next)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}

	return oldAccessHash, nil
}

// TokenByAccessHash находит пару по хэшу access-токена.
func (s *Storage) TokenByAccessHash(ctx context.Context, accessHash string) (*models.TokenRecord, error) {
	const op = "storage.postgres.TokenByAccessHash"

	query := `
		SELECT access_token_hash, refresh_token_hash, username, access_expires_at
		FROM tokens
		WHERE access_token_hash = $1
	`

	var rec models.TokenRecord
	err := s.db.QueryRow(ctx, query, accessHash).Scan(
		&rec.AccessTokenHash,
		&rec.RefreshTokenHash,
		&rec.Username,
		&rec.AccessExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rec, nil
}

// DeleteExpiredCodes удаляет все просроченные коды авторизации.
func (s *Storage) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.DeleteExpiredCodes"

	tag, err := s.db.Exec(ctx, `DELETE FROM authorization_codes WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteStaleTokens удаляет пары, access-токен которых истёк раньше before.
// Вместе с парой перестаёт действовать и её refresh-токен.
func (s *Storage) DeleteStaleTokens(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.DeleteStaleTokens"

	tag, err := s.db.Exec(ctx, `DELETE FROM tokens WHERE access_expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

func insertToken(ctx context.Context, db execer, rec *models.TokenRecord) error {
	_, err := db.Exec(ctx, `
		INSERT INTO tokens(access_token_hash, refresh_token_hash, username, access_expires_at)
		VALUES ($1, $2, $3, $4)
	`,
		rec.AccessTokenHash,
		rec.RefreshTokenHash,
		rec.Username,
		rec.AccessExpiresAt,
	)

	return err
}
