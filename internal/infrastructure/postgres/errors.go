package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLState devuelve el código SQLSTATE de un error de PostgreSQL (p.ej. "42P01" tabla
// inexistente) o "" si el error no viene del servidor (red, contexto, parseo de DSN).
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
