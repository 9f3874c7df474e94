package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Cantidad de cotizaciones y monto total cotizado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			s := appanalytics.NewDashboardUseCase(e.backend.Analytics, e.cfg.DB.StoreTimeout, e.log).Stats(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cotizaciones: %d\n", s.QuotationCount)
			fmt.Fprintf(out, "Monto total:  %s\n", s.TotalAmount.StringFixed(2))
			if s.Degraded {
				fmt.Fprintln(out, "(almacén no disponible)")
			}
			return nil
		},
	}
}
