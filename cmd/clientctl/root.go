package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/personnel-oauth/internal/config"
	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/service"
	"github.com/pribylovaa/personnel-oauth/internal/storage/postgres"
)

// clientAdmin — операции над клиентами, которые нужны CLI.
type clientAdmin interface {
	RegisterClient(ctx context.Context, clientID, secret, redirectURI string) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
	Clients(ctx context.Context) ([]models.Client, error)
}

// opener открывает clientAdmin по пути к конфигу; close освобождает ресурсы.
type opener func(ctx context.Context, configPath string) (admin clientAdmin, closeFn func(), err error)

// openAdmin подключается к БД из конфигурации сервиса.
func openAdmin(ctx context.Context, configPath string) (clientAdmin, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	return service.New(st, cfg.OAuth), st.Close, nil
}

func newRootCmd(open opener) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "clientctl",
		Short:         "Manage OAuth clients of personnel-service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	// Ленивое подключение: --help не требует БД.
	withAdmin := func(cmd *cobra.Command, fn func(ctx context.Context, a clientAdmin) error) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Логи сервиса не нужны в выводе CLI.
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

		a, closeFn, err := open(ctx, configPath)
		if err != nil {
			return err
		}
		defer closeFn()

		return fn(ctx, a)
	}

	root.AddCommand(
		newCreateCmd(withAdmin),
		newDeleteCmd(withAdmin),
		newListCmd(withAdmin),
	)

	return root
}
