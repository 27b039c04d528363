package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products [get]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return storeError(c, h.log, "products.list", err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), pathParam(c, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, MsgProductNotFound)
		}
		return storeError(c, h.log, "products.get", err)
	}
	return c.JSON(product)
}

// SearchByPrice godoc
// @Summary      Productos por rango de precio
// @Description  Devuelve los productos con minPrice <= price <= maxPrice.
// @Tags         products
// @Produce      json
// @Param        minPrice  query  number  true  "Precio mínimo (incluido)"
// @Param        maxPrice  query  number  true  "Precio máximo (incluido)"
// @Success      200  {array}   object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) SearchByPrice(c *fiber.Ctx) error {
	q := dto.PriceRangeQuery{
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
	}
	min, max, err := q.Bounds()
	if err != nil {
		return badRequest(c, err.Error())
	}
	products, err := h.uc.SearchByPrice(c.Context(), min, max)
	if err != nil {
		return storeError(c, h.log, "products.search_by_price", err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// FindByName godoc
// @Summary      Buscar productos por nombre
// @Description  Coincidencia por subcadena sin distinguir mayúsculas (name=Laptop encuentra "Gaming Laptop Pro").
// @Tags         products
// @Produce      json
// @Param        name  query  string  true  "Texto a buscar"
// @Success      200  {array}   object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/find [get]
func (h *ProductHandler) FindByName(c *fiber.Ctx) error {
	q := dto.NameQuery{Name: c.Query("name")}
	if q.Name == "" {
		return badRequest(c, MsgNameRequired)
	}
	products, err := h.uc.FindByName(c.Context(), q.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, MsgNameRequired)
		}
		return storeError(c, h.log, "products.find_by_name", err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// Details godoc
// @Summary      Productos con su categoría
// @Description  INNER JOIN products/categories: los productos sin categoría existente no aparecen.
// @Tags         products
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/details [get]
func (h *ProductHandler) Details(c *fiber.Ctx) error {
	products, err := h.uc.ListDetails(c.Context())
	if err != nil {
		return storeError(c, h.log, "products.details", err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}
