package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProductUseCase consultas de solo lectura sobre productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Row, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un producto por ID. Retorna domain.ErrNotFound si no existe.
// Un id que no es UTF-8 válido no puede coincidir con ninguna fila y no llega al store.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (entity.Row, error) {
	if !utf8.ValidString(id) {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// SearchByPrice devuelve los productos con min <= price <= max.
// Un rango invertido (min > max) no es un error: simplemente no hay coincidencias.
func (uc *ProductUseCase) SearchByPrice(ctx context.Context, min, max decimal.Decimal) ([]entity.Row, error) {
	return uc.repo.ListByPriceRange(ctx, min, max)
}

// FindByName busca productos cuyo nombre contenga name (sin distinguir mayúsculas).
// Retorna domain.ErrInvalidInput si name está vacío.
func (uc *ProductUseCase) FindByName(ctx context.Context, name string) ([]entity.Row, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.SearchByName(ctx, name)
}

// ListDetails devuelve product_id, product_name, price y category_name de los productos
// que tienen una categoría existente.
func (uc *ProductUseCase) ListDetails(ctx context.Context) ([]entity.Row, error) {
	return uc.repo.ListWithCategory(ctx)
}
