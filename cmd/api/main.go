package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
	"github.com/jhoicas/Cotizaciones-api/internal/application/auth"
	"github.com/jhoicas/Cotizaciones-api/internal/application/catalog"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/numbering"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
	infrapdf "github.com/jhoicas/Cotizaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Cotizaciones-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizaciones-api/pkg/config"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.App.UsesDefaultPassword() {
		log.Warn().Msg("APP_PASSWORD no configurado: se usa la contraseña por defecto")
	}

	ctx := context.Background()
	backend, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer backend.Close()

	// Sin conexión al arrancar se sigue: las lecturas se degradan y las escrituras fallan con 503.
	if applied, err := backend.Migrate(ctx); err != nil {
		log.Warn().Err(err).Msg("migraciones no aplicadas")
	} else if len(applied) > 0 {
		log.Info().Ints("versions", applied).Msg("migraciones aplicadas")
	}

	timeout := cfg.DB.StoreTimeout
	checker := pricing.NewChecker(cfg.Quote.AnomalyThreshold)
	numbers := numbering.NewGenerator(cfg.Quote.Prefix, backend.Quotations)

	submitUC := quotation.NewSubmitQuotationUseCase(
		backend.Clients, backend.Quotations, numbers, backend.Tx, checker,
		quotation.SubmitConfig{AtomicWrites: cfg.Quote.AtomicWrites, StoreTimeout: timeout},
		log.Named("quotation"),
	)
	getUC := quotation.NewGetQuotationUseCase(backend.Quotations, backend.Clients, timeout)

	renderer, err := infrapdf.NewMarotoRenderer(cfg.Company, cfg.PDF)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar generador de PDF")
	}
	pdfUC := quotation.NewPDFUseCase(getUC, renderer)

	authUC, err := auth.NewAuthUseCase(cfg.App.Password, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar acceso")
	}

	analyticsLog := log.Named("analytics")
	catalogLog := log.Named("catalog")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := backend.Ping(pingCtx); err != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{"status": status, "service": cfg.App.Name, "store": backend.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appanalytics.NewDashboardUseCase(backend.Analytics, timeout, analyticsLog),
		HistoryUC:   appanalytics.NewHistoryUseCase(backend.Analytics, cfg.Quote.HistoryPageSize, timeout, analyticsLog),
		ClientUC:    catalog.NewClientUseCase(backend.Clients, timeout, catalogLog),
		ProductUC:   catalog.NewProductUseCase(backend.Products, timeout, catalogLog),
		ImportUC:    catalog.NewImportProductsUseCase(backend.Products, timeout),
		SubmitUC:    submitUC,
		GetUC:       getUC,
		PDFUC:       pdfUC,
		Checker:     checker,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
