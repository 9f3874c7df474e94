// Package sqlite implementa los puertos de persistencia sobre un archivo SQLite local.
// Lo usan la CLI, DB_DRIVER=sqlite y los tests de integración.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Cotizaciones-api/internal/domain"
)

// DBTX es la parte común de *sql.DB y *sql.Tx usada por los repositorios.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// driverName driver sqlite3 con la función casefold registrada en cada conexión.
const driverName = "sqlite3_cotizaciones"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", casefold, true)
		},
	})
}

// casefold plegado de mayúsculas Unicode; LIKE de SQLite solo pliega ASCII.
func casefold(s string) string {
	return cases.Fold().String(s)
}

// Store conexión al archivo SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path. No aplica migraciones.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: ruta vacía")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("crear directorio de la base: %w", err)
		}
	}
	db, err := sql.Open(driverName, path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// SQLite no se beneficia de varias conexiones de escritura.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, wrapErr("ping sqlite", err)
	}
	return &Store{db: db, path: path}, nil
}

// DB devuelve el *sql.DB subyacente.
func (s *Store) DB() *sql.DB { return s.db }

// Path ruta del archivo.
func (s *Store) Path() string { return s.path }

// Close cierra la conexión.
func (s *Store) Close() error { return s.db.Close() }

// Ping verifica que el archivo siga accesible.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return wrapErr("ping sqlite", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrFull:
			return true
		}
	}
	return errors.Is(err, sql.ErrConnDone)
}

func wrapErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
	case isConnectivityError(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConnectivity, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
