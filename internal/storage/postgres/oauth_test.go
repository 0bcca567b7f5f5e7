package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

func saveCode(t *testing.T, st *Storage, hash, username string, expiresAt time.Time) {
	t.Helper()

	require.NoError(t, st.SaveAuthorizationCode(context.Background(), &models.AuthorizationCode{
		CodeHash:  hash,
		Username:  username,
		ExpiresAt: expiresAt,
	}))
}

func record(access, refresh string, exp time.Time) *models.TokenRecord {
	return &models.TokenRecord{AccessTokenHash: access, RefreshTokenHash: refresh, AccessExpiresAt: exp}
}

func TestIntegration_ExchangeAuthorizationCode_SingleUse(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "code-1", "alice", now.Add(10*time.Minute))

	next := record("a1", "r1", now.Add(time.Hour))
	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "code-1", now, next))
	require.Equal(t, "alice", next.Username)

	got, err := st.TokenByAccessHash(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "r1", got.RefreshTokenHash)
	require.WithinDuration(t, now.Add(time.Hour), got.AccessExpiresAt, time.Millisecond)

	// Повторный обмен того же кода.
	err = st.ExchangeAuthorizationCode(ctx, "code-1", now, record("a2", "r2", now.Add(time.Hour)))
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.TokenByAccessHash(ctx, "a2")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ExchangeAuthorizationCode_Expired(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "old", "alice", now.Add(-time.Second))

	err := st.ExchangeAuthorizationCode(ctx, "old", now, record("a1", "r1", now.Add(time.Hour)))
	require.ErrorIs(t, err, storage.ErrExpired)

	// Токен не сохранён — транзакция откатилась.
	_, err = st.TokenByAccessHash(ctx, "a1")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ExchangeAuthorizationCode_ConcurrentSingleWinner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "race", "alice", now.Add(time.Minute))

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		notFound int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			access := "a-" + string(rune('a'+i))
			refresh := "r-" + string(rune('a'+i))
			err := st.ExchangeAuthorizationCode(context.Background(), "race", now, record(access, refresh, now.Add(time.Hour)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, storage.ErrNotFound):
				notFound++
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, n-1, notFound)
}

func TestIntegration_RotateTokenPair_OK_And_OldRefreshInvalid(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "c", "alice", now.Add(time.Minute))
	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "c", now, record("a1", "r1", now.Add(time.Hour))))

	next := record("a2", "r2", now.Add(time.Hour))
	oldAccess, err := st.RotateTokenPair(ctx, "r1", next)
	require.NoError(t, err)
	require.Equal(t, "a1", oldAccess)
	require.Equal(t, "alice", next.Username)

	// Старая пара удалена целиком.
	_, err = st.TokenByAccessHash(ctx, "a1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.RotateTokenPair(ctx, "r1", record("a3", "r3", now.Add(time.Hour)))
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_RotateTokenPair_ConcurrentSingleWinner — из конкурентных
// ротаций одного refresh-токена успешна ровно одна.
func TestIntegration_RotateTokenPair_ConcurrentSingleWinner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "c", "alice", now.Add(time.Minute))
	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "c", now, record("a0", "r0", now.Add(time.Hour))))

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		notFound int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			access := "a-" + string(rune('a'+i))
			refresh := "r-" + string(rune('a'+i))
			_, err := st.RotateTokenPair(context.Background(), "r0", record(access, refresh, now.Add(time.Hour)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, storage.ErrNotFound):
				notFound++
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, n-1, notFound)
}

func TestIntegration_ExchangeAuthorizationCode_TokenCollision(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()
	saveCode(t, st, "c1", "alice", now.Add(time.Minute))
	saveCode(t, st, "c2", "alice", now.Add(time.Minute))
	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "c1", now, record("a1", "r1", now.Add(time.Hour))))

	// Коллизия хэша access-токена: ErrAlreadyExists, код c2 остаётся живым.
	err := st.ExchangeAuthorizationCode(ctx, "c2", now, record("a1", "r9", now.Add(time.Hour)))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "c2", now, record("a2", "r2", now.Add(time.Hour))))
}

func TestIntegration_DeleteExpiredCodes_And_StaleTokens(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, st, "alice")
	now := time.Now().UTC()

	saveCode(t, st, "past", "alice", now.Add(-time.Minute))
	saveCode(t, st, "future", "alice", now.Add(time.Minute))

	n, err := st.DeleteExpiredCodes(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, st.ExchangeAuthorizationCode(ctx, "future", now, record("a1", "r1", now.Add(-2*time.Hour))))

	n, err = st.DeleteStaleTokens(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = st.TokenByAccessHash(ctx, "a1")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
