// Package store elige el adaptador de persistencia según DB_DRIVER y expone
// los repositorios ya construidos.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Cotizaciones-api/pkg/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Backend repositorios de un almacén abierto.
type Backend struct {
	Driver     string
	Clients    repository.ClientRepository
	Products   repository.ProductRepository
	Quotations repository.QuotationRepository
	Analytics  repository.AnalyticsRepository
	Tx         quotation.TxRunner

	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) ([]int, error)
	close   func()
}

// Open abre el almacén configurado. Con postgres no se hace ping: el servicio
// arranca aunque la base no responda y las lecturas se degradan.
func Open(ctx context.Context, cfg config.DBConfig) (*Backend, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return postgresBackend(pool), nil
	case DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return SQLiteBackend(s), nil
	default:
		return nil, fmt.Errorf("store: driver no soportado %q", cfg.Driver)
	}
}

func postgresBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{
		Driver:     DriverPostgres,
		Clients:    postgres.NewClientRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Quotations: postgres.NewQuotationRepository(pool),
		Analytics:  postgres.NewAnalyticsRepository(pool),
		Tx:         postgres.NewTxRunner(pool),
		ping:       func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
		migrate:    func(ctx context.Context) ([]int, error) { return postgres.Migrate(ctx, pool) },
		close:      pool.Close,
	}
}

// SQLiteBackend envuelve un archivo SQLite ya abierto.
func SQLiteBackend(s *sqlite.Store) *Backend {
	db := s.DB()
	return &Backend{
		Driver:     DriverSQLite,
		Clients:    sqlite.NewClientRepository(db),
		Products:   sqlite.NewProductRepository(db),
		Quotations: sqlite.NewQuotationRepository(db),
		Analytics:  sqlite.NewAnalyticsRepository(db),
		Tx:         sqlite.NewTxRunner(db),
		ping:       s.Ping,
		migrate: func(ctx context.Context) ([]int, error) {
			if err := s.Migrate(ctx); err != nil {
				return nil, err
			}
			return nil, nil
		},
		close: func() { _ = s.Close() },
	}
}

// Ping verifica conectividad.
func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

// Migrate aplica el esquema pendiente. Con postgres devuelve las versiones aplicadas.
func (b *Backend) Migrate(ctx context.Context) ([]int, error) { return b.migrate(ctx) }

// Close libera conexiones.
func (b *Backend) Close() { b.close() }
