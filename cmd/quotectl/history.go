package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/spreadsheet"
)

var historyHeaders = []string{"Fecha", "Número", "Cliente", "Producto", "Cant.", "P. unitario", "Precio lista", "Descuento"}

func historyCmd() *cobra.Command {
	var (
		offset, limit int
		xlsxOut       string
	)
	cmd := &cobra.Command{
		Use:   "history [palabra clave]",
		Short: "Buscar precios cotizados por nombre de producto",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			q := dto.HistoryQuery{PageRequest: dto.PageRequest{Offset: offset, Limit: limit}}
			if len(args) == 1 {
				q.Keyword = args[0]
			}
			uc := appanalytics.NewHistoryUseCase(e.backend.Analytics, e.cfg.Quote.HistoryPageSize, e.cfg.DB.StoreTimeout, e.log)
			page := uc.Search(cmd.Context(), q)
			if page.Degraded {
				e.log.Warn().Msg("almacén no disponible: historial vacío")
			}

			rows := historyRows(page.Items)
			if xlsxOut != "" {
				f, err := os.Create(xlsxOut)
				if err != nil {
					return err
				}
				defer f.Close()
				return spreadsheet.WriteXLSX(f, "Historial", dto.Table{Headers: historyHeaders, Rows: rows})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
				Headers(historyHeaders...).
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t)
			if page.HasMore {
				fmt.Fprintf(cmd.OutOrStdout(), "más resultados: --offset %d\n", page.NextOffset)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "desplazamiento")
	cmd.Flags().IntVar(&limit, "limit", 0, "tamaño de página (HISTORY_PAGE_SIZE por defecto)")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "exportar la página a un archivo .xlsx")
	return cmd
}

func historyRows(items []dto.HistoryEntryResponse) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.QuoteDate,
			it.QuoteNumber,
			it.ClientName,
			it.ProductName,
			strconv.Itoa(it.Quantity),
			it.UnitPrice.String(),
			it.DealerPrice.String(),
			it.DiscountPercent,
		})
	}
	return rows
}
