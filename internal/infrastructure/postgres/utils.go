package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Cotizaciones-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isConnectivityError indica si el error proviene de la red o de la disponibilidad del servidor
// (timeouts, conexión rechazada, servidor apagándose) y no de los datos enviados.
func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection_exception, 57P0x servidor cerrando, 53300 demasiadas conexiones
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0") || pgErr.Code == "53300"
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapErr agrega la operación y clasifica el error en la taxonomía del dominio,
// conservando la causa original en la cadena.
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

// likeEscaper escapa los comodines de LIKE; las consultas declaran ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón LIKE para "contiene keyword".
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// prefixPattern patrón LIKE para "empieza con prefix".
func prefixPattern(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
