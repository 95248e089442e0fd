package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
)

// CompanyHandler expone las empresas visibles y sus resúmenes.
type CompanyHandler struct {
	resolver   *session.Resolver
	aggregator *reporting.Aggregator
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(resolver *session.Resolver, aggregator *reporting.Aggregator) *CompanyHandler {
	return &CompanyHandler{resolver: resolver, aggregator: aggregator}
}

// List GET /api/companies
// Empresas visibles para el usuario activo, en su orden de acceso.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies := h.resolver.Companies()
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		out = append(out, *toCompanyResponse(comp))
	}
	return c.JSON(out)
}

// Summary GET /api/companies/:id/summary
// Resumen derivado de la empresa. Un id desconocido devuelve el resumen en
// cero, no 404: para el agregador "empresa desconocida" es "sin datos".
func (h *CompanyHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.aggregator.CompanySummary(c.Params("id")))
}
