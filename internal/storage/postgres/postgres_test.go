package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/personnel-oauth/internal/models"
)

// Интеграционные тесты пакета postgres:
//   - поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
//   - применяют встроенные миграции через Storage.Migrate;
//   - проверяют ошибки хранилища (storage.ErrNotFound/ErrAlreadyExists/...) и атомарность ротаций.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres поднимает временный PostgreSQL, применяет миграции и
// возвращает хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// Порт может открыться раньше, чем postgres примет соединения.
	var st *Storage
	require.Eventually(t, func() bool {
		st, err = New(ctx, dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)

	require.NoError(t, st.Migrate(ctx))
	// Повторное применение миграций не должно падать.
	require.NoError(t, st.Migrate(ctx))

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}

	return st, cleanup
}

// seedUser создаёт пользователя с заданным именем.
func seedUser(t *testing.T, st *Storage, username string) {
	t.Helper()

	require.NoError(t, st.SaveUser(context.Background(), &models.User{
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "hash",
	}))
}

// seedDepartment создаёт отдел с заданным ID.
func seedDepartment(t *testing.T, st *Storage, id int64) {
	t.Helper()

	require.NoError(t, st.CreateDepartment(context.Background(), &models.Department{
		ID:       id,
		Name:     fmt.Sprintf("dept-%d", id),
		Location: "HQ",
		Email:    "dept@example.com",
	}))
}
