package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/auth"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver   *session.Resolver
	Aggregator *reporting.Aggregator
	AuthUC     *auth.AuthUseCase
	AgingPDF   *pdf.AgingReportPDFGenerator
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth mock (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/sign-in", authHandler.SignIn)
	authGroup.Post("/sign-out", authHandler.SignOut)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión / tenancy
	sessionHandler := NewSessionHandler(deps.Resolver)
	protected.Get("/session", sessionHandler.Get)
	protected.Post("/session/company", sessionHandler.SwitchCompany)

	// Empresas visibles + resumen
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.Resolver, deps.Aggregator)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id/summary", companyHandler.Summary)

	// Colecciones de cartera
	receivablesHandler := NewReceivablesHandler(deps.Resolver, deps.Aggregator)
	protected.Get("/customers", receivablesHandler.Customers)
	protected.Get("/invoices", receivablesHandler.Invoices)
	protected.Get("/communications", receivablesHandler.Communications)
	protected.Get("/aging-report", receivablesHandler.AgingReport)
	protected.Get("/aging-report/summary", receivablesHandler.AgingSummary)

	// Dashboards
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Resolver, deps.Aggregator)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/accountant", RequireRole(entity.RoleAccountant), dashboardHandler.Accountant)

	// Exportación de reportes
	reportHandler := NewReportHandler(deps.Resolver, deps.Aggregator, deps.AgingPDF)
	protected.Get("/reports/aging.pdf", reportHandler.AgingPDF)
}
