package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q RowQuerier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q RowQuerier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las filas de categories.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}
