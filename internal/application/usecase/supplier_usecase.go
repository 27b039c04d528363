package usecase

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// SupplierUseCase consultas sobre proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]entity.Row, error) {
	return uc.repo.List(ctx)
}

// ListWithProducts devuelve cada proveedor junto a sus productos, ordenado por supplier_id.
func (uc *SupplierUseCase) ListWithProducts(ctx context.Context) ([]entity.Row, error) {
	return uc.repo.ListWithProducts(ctx)
}
