package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/infrastructure/postgres"
	"github.com/jhoicas/store-api/pkg/logger"
)

// Mensajes de error expuestos al cliente.
const (
	MsgDatabaseError    = "Database error"
	MsgUserNotFound     = "User not found"
	MsgProductNotFound  = "Product not found"
	MsgNameRequired     = "name query parameter is required"
	MsgRouteNotFound    = "Not found"
	MsgInternalError    = "Internal server error"
	MsgReportGeneration = "Report generation failed"
)

// storeError registra el detalle del error del store y responde 500 con un mensaje
// genérico: el texto del driver nunca llega al cliente.
func storeError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	ev := log.Error().Err(err).
		Str("op", op).
		Str("request_id", RequestID(c))
	if code := postgres.SQLState(err); code != "" {
		ev = ev.Str("sqlstate", code)
	}
	ev.Msg("error de base de datos")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: MsgDatabaseError})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msg})
}

// pathParam devuelve el parámetro de ruta decodificado (%20 -> espacio). Si la
// secuencia de escape es inválida se usa el valor tal cual llegó.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
