package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ErrReportGeneration la consulta funcionó pero el documento no pudo generarse.
var ErrReportGeneration = errors.New("no se pudo generar el reporte")

// ReportUseCase genera reportes descargables a partir de las mismas consultas de la API.
type ReportUseCase struct {
	products  repository.ProductRepository
	generator ProductReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, generator ProductReportGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, generator: generator, now: time.Now}
}

// ProductDetailsPDF consulta productos con su categoría (INNER JOIN) y los renderiza en PDF.
// Retorna los bytes y el nombre de archivo sugerido (productos-AAAAMMDD.pdf).
func (uc *ReportUseCase) ProductDetailsPDF(ctx context.Context) ([]byte, string, error) {
	rows, err := uc.products.ListWithCategory(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateProductDetailsPDF(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrReportGeneration, err)
	}
	return pdf, "productos-" + uc.now().Format("20060102") + ".pdf", nil
}
