package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/pkg/logger"
)

// ReportHandler sirve los reportes descargables.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// ProductDetailsPDF godoc
// @Summary      Reporte PDF de productos con categoría
// @Description  Mismo contenido que /api/products/details renderizado como tabla A4.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/products/details.pdf [get]
func (h *ReportHandler) ProductDetailsPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ProductDetailsPDF(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrReportGeneration) {
			h.log.Error().Err(err).Str("request_id", RequestID(c)).Msg("generación de PDF")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: MsgReportGeneration})
		}
		return storeError(c, h.log, "reports.product_details", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
