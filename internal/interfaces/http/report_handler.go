package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/pdf"
)

// ReportHandler exporta reportes de la empresa activa.
type ReportHandler struct {
	resolver   *session.Resolver
	aggregator *reporting.Aggregator
	generator  *pdf.AgingReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(
	resolver *session.Resolver,
	aggregator *reporting.Aggregator,
	generator *pdf.AgingReportPDFGenerator,
) *ReportHandler {
	return &ReportHandler{resolver: resolver, aggregator: aggregator, generator: generator}
}

// AgingPDF GET /api/reports/aging.pdf
// PDF del reporte de antigüedad de la empresa activa.
func (h *ReportHandler) AgingPDF(c *fiber.Ctx) error {
	company := h.resolver.CurrentCompany()
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "no hay empresa activa"})
	}

	asOf := time.Now()
	rows := h.aggregator.AgingReportByCompany(company.ID)
	totals := h.aggregator.AgingTotals(company.ID)

	doc, err := h.generator.Generate(company, rows, totals, asOf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="aging-report-%s-%s.pdf"`, company.ID, asOf.Format("2006-01-02")))
	return c.Send(doc)
}
