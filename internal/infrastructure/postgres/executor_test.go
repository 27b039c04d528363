package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/infrastructure/postgres"
)

// fakeRows implementa pgx.Rows sobre valores en memoria.
type fakeRows struct {
	cols   []string
	values [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }
func (r *fakeRows) RawValues() [][]byte           { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.values) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(r)
		}
	}
	return errors.New("fakeRows: solo soporta RowScanner")
}

// fakeQuerier registra la última consulta y devuelve filas o error fijos.
type fakeQuerier struct {
	rows    *fakeRows
	err     error
	pingErr error
	sql     string
	args    []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func (q *fakeQuerier) Ping(context.Context) error { return q.pingErr }

func TestExecutor_Query_DevuelveFilasComoMapas(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		cols: []string{"supplier_id", "supplier_name", "product_name"},
		values: [][]any{
			{int32(1), "Acme", "Gaming Laptop Pro"},
			{int32(2), "Globex", nil},
		},
	}}
	exec := postgres.NewExecutor(q)

	rows, err := exec.Query(context.Background(), "SELECT 1 WHERE $1 = $2", "a", 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, entity.Row{"supplier_id": int32(1), "supplier_name": "Acme", "product_name": "Gaming Laptop Pro"}, rows[0])
	assert.Nil(t, rows[1]["product_name"], "NULL del LEFT JOIN debe llegar como nil")
	assert.Contains(t, rows[1], "product_name")

	assert.Equal(t, "SELECT 1 WHERE $1 = $2", q.sql)
	assert.Equal(t, []any{"a", 7}, q.args, "los argumentos se pasan enlazados, sin tocar el SQL")
	assert.True(t, q.rows.closed, "las filas deben cerrarse")
}

func TestExecutor_Query_SinFilasDevuelveSliceVacio(t *testing.T) {
	exec := postgres.NewExecutor(&fakeQuerier{rows: &fakeRows{cols: []string{"id"}}})

	rows, err := exec.Query(context.Background(), "SELECT * FROM users")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecutor_Query_PropagaErrores(t *testing.T) {
	boom := errors.New("connection refused")
	exec := postgres.NewExecutor(&fakeQuerier{err: boom})

	_, err := exec.Query(context.Background(), "SELECT * FROM users")
	assert.ErrorIs(t, err, boom)

	iterErr := errors.New("conexión cerrada a mitad de lectura")
	exec = postgres.NewExecutor(&fakeQuerier{rows: &fakeRows{cols: []string{"id"}, err: iterErr}})
	_, err = exec.Query(context.Background(), "SELECT * FROM users")
	assert.ErrorIs(t, err, iterErr)
}

func TestExecutor_Ping(t *testing.T) {
	assert.NoError(t, postgres.NewExecutor(&fakeQuerier{}).Ping(context.Background()))

	down := errors.New("down")
	assert.ErrorIs(t, postgres.NewExecutor(&fakeQuerier{pingErr: down}).Ping(context.Background()), down)
}

func TestSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`}
	assert.Equal(t, "42P01", postgres.SQLState(pgErr))
	assert.Equal(t, "42P01", postgres.SQLState(errors.Join(errors.New("list users"), pgErr)))
	assert.Equal(t, "", postgres.SQLState(errors.New("dial tcp: connection refused")))
}
