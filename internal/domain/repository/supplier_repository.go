package repository

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura para la tabla suppliers.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Row, error)
	// ListWithProducts devuelve supplier_id, supplier_name y product_name (LEFT JOIN),
	// ordenado por supplier_id. Proveedores sin productos traen product_name NULL.
	ListWithProducts(ctx context.Context) ([]entity.Row, error)
}
