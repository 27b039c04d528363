package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// Querier es lo mínimo que el Executor necesita del driver. Lo cumplen *pgxpool.Pool y *pgx.Conn.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// RowQuerier es el puerto que usan los repositorios: SQL fijo + parámetros enlazados -> filas.
type RowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) ([]entity.Row, error)
}

var _ RowQuerier = (*Executor)(nil)

// Executor ejecuta sentencias parametrizadas sobre el handle compartido y devuelve
// las filas como mapas columna -> valor, en el orden en que las entrega el store.
type Executor struct {
	q Querier
}

// NewExecutor construye el executor sobre el pool (o una conexión).
func NewExecutor(q Querier) *Executor {
	return &Executor{q: q}
}

// Query ejecuta sql con args como parámetros enlazados ($1, $2, ...). Los valores del
// usuario nunca se concatenan al texto SQL. Un resultado vacío es un slice vacío, no nil.
func (e *Executor) Query(ctx context.Context, sql string, args ...any) ([]entity.Row, error) {
	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, rowToEntity)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Row{}
	}
	return list, nil
}

// Ping verifica que la conexión sigue viva (usado por /health/db).
func (e *Executor) Ping(ctx context.Context) error {
	return e.q.Ping(ctx)
}

func rowToEntity(row pgx.CollectableRow) (entity.Row, error) {
	m, err := pgx.RowToMap(row)
	if err != nil {
		return nil, err
	}
	return entity.Row(m), nil
}
