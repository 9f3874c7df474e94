// Command quotectl opera el almacén de cotizaciones desde la terminal: migraciones,
// importación de listas de precios, historial, panel, calculadora y PDF.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/store"
	"github.com/jhoicas/Cotizaciones-api/pkg/config"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

var (
	v       = config.NewViper()
	rootCmd = &cobra.Command{
		Use:           "quotectl",
		Short:         "Herramienta de línea de comandos para cotizaciones",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("db-driver", "", "almacén: postgres | sqlite (DB_DRIVER)")
	rootCmd.PersistentFlags().String("sqlite-path", "", "archivo SQLite (SQLITE_PATH)")
	rootCmd.PersistentFlags().String("database-url", "", "DSN de PostgreSQL (DATABASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "nivel de log (LOG_LEVEL)")

	_ = v.BindPFlag("DB_DRIVER", rootCmd.PersistentFlags().Lookup("db-driver"))
	_ = v.BindPFlag("SQLITE_PATH", rootCmd.PersistentFlags().Lookup("sqlite-path"))
	_ = v.BindPFlag("DATABASE_URL", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = v.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(nextNumberCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(pdfCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env configuración y dependencias compartidas por los subcomandos.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	backend *store.Backend
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})
	return cfg, log, nil
}

// openEnv carga la configuración y abre el almacén. El caller debe llamar close.
func openEnv(cmd *cobra.Command) (*env, func(), error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	backend, err := store.Open(cmd.Context(), cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir almacén: %w", err)
	}
	return &env{cfg: cfg, log: log, backend: backend}, backend.Close, nil
}
