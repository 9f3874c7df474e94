package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crear o actualizar el esquema del almacén",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			applied, err := e.backend.Migrate(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrar: %w", err)
			}
			e.log.Info().Str("driver", e.backend.Driver).Ints("applied", applied).Msg("esquema al día")
			return nil
		},
	}
}
