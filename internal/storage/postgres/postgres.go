package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/personnel-oauth/internal/storage"
	"github.com/pribylovaa/personnel-oauth/migrations"
)

// Storage — реализация storage.Storage поверх пула соединений PostgreSQL.
// Пул безопасен для конкурентного использования; состояние запроса не хранится.
type Storage struct {
	db *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Migrate применяет встроенные up-миграции по порядку.
// Миграции идемпотентны (IF NOT EXISTS), повторный вызов безопасен.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	names, err := migrations.Up()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, name := range names {
		sql, err := migrations.Read(name)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}

		if _, err := s.db.Exec(ctx, sql); err != nil {
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}
	}

	return nil
}

// Ping проверяет доступность БД.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// mapError переводит ошибки ограничений PostgreSQL в ошибки пакета storage.
// Прочие ошибки (в т.ч. context.Canceled/DeadlineExceeded) возвращаются как есть.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return storage.ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return storage.ErrForeignKey
		}
	}

	return err
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
