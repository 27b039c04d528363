package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/pkg/logger"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// List GET /suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.uc.List(c.Context())
	if err != nil {
		return storeError(c, h.log, "suppliers.list", err)
	}
	return c.JSON(suppliers)
}

// ListWithProducts godoc
// @Summary      Proveedores y sus productos
// @Description  LEFT JOIN suppliers/products ordenado por supplier_id; un proveedor sin productos
// @Description  aparece una vez con product_name null.
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/suppliers/products [get]
func (h *SupplierHandler) ListWithProducts(c *fiber.Ctx) error {
	rows, err := h.uc.ListWithProducts(c.Context())
	if err != nil {
		return storeError(c, h.log, "suppliers.products", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
