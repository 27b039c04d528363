package repository

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de lectura para la tabla products.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Row, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (entity.Row, error)
	// ListByPriceRange filtra por precio en el rango cerrado [min, max].
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]entity.Row, error)
	// SearchByName busca name como subcadena de product_name sin distinguir mayúsculas.
	SearchByName(ctx context.Context, name string) ([]entity.Row, error)
	// ListWithCategory devuelve product_id, product_name, price y category_name (INNER JOIN).
	ListWithCategory(ctx context.Context) ([]entity.Row, error)
}
