// @title        Store API
// @version      1.0
// @description  API de solo lectura sobre la base de la tienda: usuarios, productos, categorías y proveedores.
// @host         localhost:1234
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/store-api/docs"
	"github.com/jhoicas/store-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/store-api/internal/infrastructure/pdf"
	"github.com/jhoicas/store-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/store-api/internal/interfaces/http"
	"github.com/jhoicas/store-api/pkg/config"
	"github.com/jhoicas/store-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", docs.SwaggerInfo.Version).
		Msg("iniciando aplicación")

	// Un solo handle al store, compartido por todas las peticiones.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).
			Str("host", cfg.DB.Host).
			Str("db", cfg.DB.DBName).
			Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	log.Info().Int32("max_conns", pool.Config().MaxConns).Msg("conectado a PostgreSQL")

	exec := postgres.NewExecutor(pool)

	userRepo := postgres.NewUserRepository(exec)
	productRepo := postgres.NewProductRepository(exec)
	categoryRepo := postgres.NewCategoryRepository(exec)
	supplierRepo := postgres.NewSupplierRepository(exec)

	// PDF: catálogo de productos con su categoría
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName: cfg.App.Name,
		Swagger: cfg.Swagger,
	}, log)

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:     usecase.NewUserUseCase(userRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC: usecase.NewSupplierUseCase(supplierRepo),
		ReportUC:   usecase.NewReportUseCase(productRepo, pdfGenerator),
		DB:         exec,
		Logger:     log,
		AppName:    cfg.App.Name,
		Version:    docs.SwaggerInfo.Version,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := httpRouter.Serve(app, cfg.HTTP.Addr(), quit); err != nil {
		// Puerto ocupado o dirección inválida: sin servidor HTTP el proceso termina con error.
		pool.Close()
		log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
