package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/pkg/config"
	"github.com/jhoicas/store-api/pkg/logger"
)

// LocalRequestID key de c.Locals donde requestid deja el id de la petición.
const LocalRequestID = "requestid"

// ServerConfig opciones de la app Fiber.
type ServerConfig struct {
	AppName string
	Swagger config.SwaggerConfig
}

// NewServer crea la app Fiber con el manejo de errores y los middlewares comunes
// (request id, log de peticiones, recover y, opcionalmente, Swagger UI en /docs).
// Las rutas se registran después con Router.
func NewServer(cfg ServerConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	}))
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    cfg.AppName,
		}))
	}

	return app
}

// errorHandler traduce los errores que llegan a Fiber (rutas inexistentes, métodos no
// permitidos, panics recuperados) al mismo cuerpo {"error": ...} de los handlers.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := MsgInternalError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			switch {
			case code == fiber.StatusNotFound:
				msg = MsgRouteNotFound
			case code < fiber.StatusInternalServerError:
				msg = fe.Message
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", RequestID(c)).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
}

// RequestID devuelve el id asignado a la petición ("" si el middleware no corrió).
func RequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Serve arranca app en addr y bloquea hasta recibir una señal en stop (devuelve nil; el
// apagado queda a cargo del llamador) o hasta que Listen falle, p.ej. puerto ocupado.
func Serve(app *fiber.App, addr string, stop <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err == nil {
			err = errors.New("servidor HTTP detenido inesperadamente")
		}
		return err
	case <-stop:
		return nil
	}
}
