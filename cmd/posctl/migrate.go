package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := postgres.ApplyMigrations(ctx, e.pool); err != nil {
				return err
			}
			version, err := postgres.MigrationVersion(ctx, e.pool)
			if err != nil {
				return err
			}
			e.log.Info().Int64("version", version).Msg("esquema actualizado")
			return nil
		},
	}
}
