package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizaciones-api/internal/application/catalog"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/spreadsheet"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <archivo.xlsx|archivo.csv>...",
		Short: "Importar listas de precios al catálogo de productos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			uc := catalog.NewImportProductsUseCase(e.backend.Products, e.cfg.DB.StoreTimeout)
			bar := progressbar.NewOptions(len(args),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Importando...[reset]"),
				progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
			)

			var failed int
			for _, path := range args {
				n, skipped, err := importFile(cmd, uc, path)
				_ = bar.Add(1)
				if err != nil {
					failed++
					e.log.Error().Err(err).Str("file", path).Msg("importación fallida")
					continue
				}
				e.log.Info().Str("file", path).Int("imported", n).Int("skipped", skipped).Msg("archivo importado")
			}
			if failed > 0 {
				return fmt.Errorf("%d de %d archivos no se importaron", failed, len(args))
			}
			return nil
		},
	}
}

func importFile(cmd *cobra.Command, uc *catalog.ImportProductsUseCase, path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	table, err := spreadsheet.Read(path, f)
	if err != nil {
		return 0, 0, err
	}
	out, err := uc.Import(cmd.Context(), table)
	if err != nil {
		return 0, 0, err
	}
	return out.Imported, out.Skipped, nil
}
