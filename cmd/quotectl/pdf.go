package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	infrapdf "github.com/jhoicas/Cotizaciones-api/internal/infrastructure/pdf"
)

func pdfCmd() *cobra.Command {
	var (
		output string
		stamp  bool
	)
	cmd := &cobra.Command{
		Use:   "pdf <número>",
		Short: "Generar el PDF de una cotización guardada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			renderer, err := infrapdf.NewMarotoRenderer(e.cfg.Company, e.cfg.PDF)
			if err != nil {
				return err
			}
			getter := quotation.NewGetQuotationUseCase(e.backend.Quotations, e.backend.Clients, e.cfg.DB.StoreTimeout)
			pdfBytes, filename, err := quotation.NewPDFUseCase(getter, renderer).
				Render(cmd.Context(), args[0], dto.RenderOptions{WithStamp: stamp})
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			e.log.Info().Str("file", output).Int("bytes", len(pdfBytes)).Msg("PDF generado")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida (Quotation_<número>.pdf por defecto)")
	cmd.Flags().BoolVar(&stamp, "stamp", true, "incluir sello de la empresa")
	return cmd
}
