package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/pkg/logger"
)

// Pinger lo cumple postgres.Executor.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone /health (proceso vivo) y /health/db (store alcanzable).
type HealthHandler struct {
	service string
	version string
	db      Pinger
	log     *logger.Logger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(service, version string, db Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{service: service, version: version, db: db, log: log}
}

// Live GET /health
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Service: h.service, Version: h.version})
}

// DB GET /health/db: 503 si el store no responde al ping.
func (h *HealthHandler) DB(c *fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		h.log.Error().Err(err).Str("request_id", RequestID(c)).Msg("ping a la base de datos")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: MsgDatabaseError})
	}
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
