package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/numbering"
)

func nextNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-number",
		Short: "Mostrar el próximo número de cotización del mes (sin reservarlo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := storecall.WithTimeout(cmd.Context(), e.cfg.DB.StoreTimeout)
			defer cancel()
			n := numbering.NewGenerator(e.cfg.Quote.Prefix, e.backend.Quotations).Next(ctx, time.Now())
			if n.Offline {
				e.log.Warn().Msg("almacén no disponible: número provisional")
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Value)
			return nil
		},
	}
}
