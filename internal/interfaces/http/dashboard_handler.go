package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
)

// DashboardHandler expone los KPIs del dashboard.
type DashboardHandler struct {
	resolver   *session.Resolver
	aggregator *reporting.Aggregator
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(resolver *session.Resolver, aggregator *reporting.Aggregator) *DashboardHandler {
	return &DashboardHandler{resolver: resolver, aggregator: aggregator}
}

// Summary GET /api/dashboard/summary
// KPIs de la empresa activa: resumen de cartera, DSO y tramos de antigüedad.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	company := h.resolver.CurrentCompany()
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "no hay empresa activa"})
	}
	return c.JSON(dto.DashboardSummaryDTO{
		Summary:     h.aggregator.CompanySummary(company.ID),
		DSO:         h.aggregator.DSO(company.ID, time.Now()),
		AgingTotals: h.aggregator.AgingTotals(company.ID),
	})
}

// Accountant GET /api/dashboard/accountant
// Vista agregada multi-empresa; solo para usuarios contadores.
func (h *DashboardHandler) Accountant(c *fiber.Ctx) error {
	if !h.resolver.IsAccountant() {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo disponible para contadores"})
	}
	return c.JSON(h.aggregator.AccountantOverview(h.resolver.Companies()))
}
