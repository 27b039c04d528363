package usecase

import (
	"context"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// ProductReportGenerator genera el PDF del catálogo a partir de las filas producto+categoría.
// Lo implementa infrastructure/pdf.MarotoReportGenerator.
type ProductReportGenerator interface {
	GenerateProductDetailsPDF(ctx context.Context, rows []entity.Row) ([]byte, error)
}
