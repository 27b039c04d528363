package repository

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura para la tabla users.
type UserRepository interface {
	List(ctx context.Context) ([]entity.Row, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (entity.Row, error)
}
