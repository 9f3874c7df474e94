package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion última versión del esquema que espera la aplicación.
const SchemaVersion = 2

// Migration cambio de esquema versionado.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, q := range queries {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("ejecutar %.40q: %w", q, err)
		}
	}
	return nil
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Esquema inicial",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS clients (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					tax_id TEXT NOT NULL DEFAULT '',
					contact_person TEXT NOT NULL DEFAULT '',
					phone TEXT NOT NULL DEFAULT '',
					address TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS products (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					spec TEXT NOT NULL DEFAULT '',
					dealer_price TEXT NOT NULL DEFAULT '0',
					created_at TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)`,
				`CREATE TABLE IF NOT EXISTS quotations (
					id TEXT PRIMARY KEY,
					quote_no TEXT NOT NULL UNIQUE,
					client_id TEXT NOT NULL REFERENCES clients(id),
					date DATE NOT NULL,
					created_at TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS quotation_items (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					quotation_id TEXT NOT NULL REFERENCES quotations(id) ON DELETE CASCADE,
					position INTEGER NOT NULL DEFAULT 0,
					product_name TEXT NOT NULL,
					quantity INTEGER NOT NULL CHECK (quantity > 0),
					unit_price TEXT NOT NULL,
					dealer_price_snapshot TEXT NOT NULL DEFAULT '0'
				)`,
				`CREATE INDEX IF NOT EXISTS idx_quotation_items_quotation ON quotation_items(quotation_id)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Índice de prefijo para números de cotización",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, `CREATE INDEX IF NOT EXISTS idx_quotations_quote_no ON quotations(quote_no)`)
		},
	},
}

// Migrate aplica las migraciones pendientes usando PRAGMA user_version como versión.
func (s *Store) Migrate(ctx context.Context) error {
	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return wrapErr("leer versión del esquema", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return wrapErr("iniciar migración", err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migración %d falló: %w", m.Version, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("actualizar versión del esquema: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("confirmar migración %d: %w", m.Version, err)
		}
	}

	var final int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&final); err != nil {
		return wrapErr("verificar versión del esquema", err)
	}
	if final != SchemaVersion {
		return fmt.Errorf("versión de esquema inesperada: se esperaba %d, hay %d", SchemaVersion, final)
	}
	return nil
}
