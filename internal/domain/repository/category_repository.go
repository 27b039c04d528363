package repository

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para la tabla categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Row, error)
}
