package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type runner func(cmd *cobra.Command, fn func(ctx context.Context, a clientAdmin) error) error

func newCreateCmd(run runner) *cobra.Command {
	var id, secret, redirectURI string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new OAuth client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id == "" || secret == "" || redirectURI == "" {
				return errors.New("--id, --secret and --redirect-uri are required")
			}

			return run(cmd, func(ctx context.Context, a clientAdmin) error {
				c, err := a.RegisterClient(ctx, id, secret, redirectURI)
				if err != nil {
					return fmt.Errorf("failed to register client: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "client %s registered, redirect_uri %s\n", c.ClientID, c.RedirectURI)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "client_id")
	cmd.Flags().StringVar(&secret, "secret", "", "client_secret (stored as bcrypt hash)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "absolute redirect URI")

	return cmd
}

func newDeleteCmd(run runner) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an OAuth client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id == "" {
				return errors.New("--id is required")
			}

			return run(cmd, func(ctx context.Context, a clientAdmin) error {
				if err := a.DeleteClient(ctx, id); err != nil {
					return fmt.Errorf("failed to delete client: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "client %s deleted\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "client_id")

	return cmd
}

func newListCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List OAuth clients",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, a clientAdmin) error {
				clients, err := a.Clients(ctx)
				if err != nil {
					return fmt.Errorf("failed to list clients: %w", err)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "CLIENT_ID\tREDIRECT_URI")
				for _, c := range clients {
					fmt.Fprintf(tw, "%s\t%s\n", c.ClientID, c.RedirectURI)
				}
				return tw.Flush()
			})
		},
	}
}
