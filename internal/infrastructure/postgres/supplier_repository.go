package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q RowQuerier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q RowQuerier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve todas las filas de suppliers.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM suppliers`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return rows, nil
}

// ListWithProducts une cada proveedor con sus productos (LEFT JOIN): un proveedor sin
// productos aparece una vez con product_name NULL.
func (r *SupplierRepo) ListWithProducts(ctx context.Context) ([]entity.Row, error) {
	const query = `
	SELECT s.supplier_id, s.supplier_name, p.product_name
	FROM suppliers s
	LEFT JOIN products p ON s.supplier_id = p.supplier_id
	ORDER BY s.supplier_id, p.product_id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers with products: %w", err)
	}
	return rows, nil
}
