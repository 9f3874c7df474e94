package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
	"github.com/jhoicas/Cotizaciones-api/internal/application/auth"
	"github.com/jhoicas/Cotizaciones-api/internal/application/catalog"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *appanalytics.DashboardUseCase
	HistoryUC   *appanalytics.HistoryUseCase
	ClientUC    *catalog.ClientUseCase
	ProductUC   *catalog.ProductUseCase
	ImportUC    *catalog.ImportProductsUseCase
	SubmitUC    *quotation.SubmitQuotationUseCase
	GetUC       *quotation.GetQuotationUseCase
	PDFUC       *quotation.PDFUseCase
	Checker     pricing.Checker
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.HistoryUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
	protected.Get("/history", dashboardHandler.History)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImportUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)

	// /pdf se registra antes de /:number
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.SubmitUC, deps.GetUC, deps.PDFUC)
	quotations.Post("/", quotationHandler.Submit)
	quotations.Post("/pdf", quotationHandler.RenderDocument)
	quotations.Get("/:number", quotationHandler.GetByNumber)
	quotations.Get("/:number/pdf", quotationHandler.PDF)

	toolsHandler := NewToolsHandler(deps.Checker, deps.ProductUC)
	protected.Post("/pricing/check", toolsHandler.CheckPrice)
	protected.Post("/calculator/evaluate", toolsHandler.Evaluate)
	protected.Post("/calculator/press", toolsHandler.Press)
}
