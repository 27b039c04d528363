package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q RowQuerier
}

// NewUserRepository construye el adaptador de lectura para usuarios.
func NewUserRepository(q RowQuerier) *UserRepo {
	return &UserRepo{q: q}
}

// List devuelve todas las filas de users.
func (r *UserRepo) List(ctx context.Context) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return rows, nil
}

// GetByID obtiene un usuario por ID. El id llega como texto desde la ruta; se compara
// contra id::text para aceptar cualquier string sin provocar errores de tipo en el store.
func (r *UserRepo) GetByID(ctx context.Context, id string) (entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM users WHERE id::text = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return first(rows), nil
}
