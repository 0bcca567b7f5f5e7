package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/personnel-oauth/internal/cache"
	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

// maxAttempts — число попыток выпуска при коллизии ключа в хранилище.
const maxAttempts = 5

// generateToken возвращает непрозрачный токен: UUIDv4 (crypto/rand) в виде 32 hex-символов.
func generateToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// hashToken возвращает SHA-256 (base64url) от токена — ключ хранения.
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// newTokenPair выпускает новую пару и её представление для хранилища.
func (s *Service) newTokenPair(now time.Time) (*models.TokenPair, *models.TokenRecord) {
	pair := &models.TokenPair{
		AccessToken:     s.newToken(),
		RefreshToken:    s.newToken(),
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
		ExpiresIn:       s.cfg.AccessTokenTTL,
	}

	record := &models.TokenRecord{
		AccessTokenHash:  hashToken(pair.AccessToken),
		RefreshTokenHash: hashToken(pair.RefreshToken),
		AccessExpiresAt:  pair.AccessExpiresAt,
	}

	return pair, record
}

// ValidateAccessToken проверяет bearer-токен и возвращает его владельца.
// Токен действителен до момента истечения включительно.
func (s *Service) ValidateAccessToken(ctx context.Context, token string) (models.Identity, error) {
	const op = "service.token.ValidateAccessToken"

	if token == "" {
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	lg := log.From(ctx)
	now := s.now()
	hash := hashToken(token)

	if s.acache != nil {
		entry, ok, err := s.acache.Get(ctx, hash)
		switch {
		case err != nil:
			lg.Warn("access_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		case ok && !now.After(entry.ExpiresAt):
			return models.Identity{Username: entry.Username}, nil
		}
	}

	record, err := s.storage.TokenByAccessHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Identity{}, fmt.Errorf("%s: %w", op, ErrForbidden)
		}

		lg.Error("access_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	if now.After(record.AccessExpiresAt) {
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if s.acache != nil {
		entry := &cache.AccessEntry{Username: record.Username, ExpiresAt: record.AccessExpiresAt}
		if err := s.acache.Set(ctx, hash, entry, record.AccessExpiresAt.Sub(now)); err != nil {
			lg.Warn("access_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else {
			s.confirmCached(ctx, hash)
		}
	}

	return models.Identity{Username: record.Username}, nil
}

// confirmCached перечитывает пару после записи в кэш и убирает запись,
// если пару успели ротировать. Ротация удаляет строку до эвикции, поэтому
// либо повторное чтение не найдёт строку, либо эвикция придёт после Set.
func (s *Service) confirmCached(ctx context.Context, hash string) {
	_, err := s.storage.TokenByAccessHash(ctx, hash)
	if err == nil {
		return
	}

	if !errors.Is(err, storage.ErrNotFound) {
		log.From(ctx).Warn("access_cache_confirm_failed",
			slog.String("op", "service.token.confirmCached"),
			slog.String("err", err.Error()),
		)
	}

	s.evictAccess(ctx, hash)
}

// evictAccess удаляет access-токен из кэша после ротации пары.
func (s *Service) evictAccess(ctx context.Context, accessHash string) {
	if s.acache == nil || accessHash == "" {
		return
	}

	if err := s.acache.Delete(ctx, accessHash); err != nil {
		log.From(ctx).Warn("access_cache_delete_failed",
			slog.String("op", "service.token.evictAccess"),
			slog.String("err", err.Error()),
		)
	}
}
