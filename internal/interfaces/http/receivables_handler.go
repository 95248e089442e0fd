package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
)

// ReceivablesHandler expone las colecciones por empresa: clientes, facturas,
// comunicaciones y reporte de antigüedad.
//
// Por defecto cada listado usa la empresa activa del resolver; con
// ?scope=all devuelve la vista multi-empresa del usuario (dashboard de
// contador), concatenada en el orden de su lista de acceso.
type ReceivablesHandler struct {
	resolver   *session.Resolver
	aggregator *reporting.Aggregator
}

// NewReceivablesHandler construye el handler.
func NewReceivablesHandler(resolver *session.Resolver, aggregator *reporting.Aggregator) *ReceivablesHandler {
	return &ReceivablesHandler{resolver: resolver, aggregator: aggregator}
}

// currentCompanyID empresa activa, o "" sin selección (listas vacías).
func (h *ReceivablesHandler) currentCompanyID() string {
	if c := h.resolver.CurrentCompany(); c != nil {
		return c.ID
	}
	return ""
}

func (h *ReceivablesHandler) scopeAll(c *fiber.Ctx) bool {
	return c.Query("scope") == "all"
}

// Customers GET /api/customers[?scope=all]
func (h *ReceivablesHandler) Customers(c *fiber.Ctx) error {
	if h.scopeAll(c) {
		return c.JSON(toCustomerResponses(h.aggregator.AllCustomersForUser(h.resolver.User())))
	}
	return c.JSON(toCustomerResponses(h.aggregator.CustomersByCompany(h.currentCompanyID())))
}

// Invoices GET /api/invoices[?scope=all]
func (h *ReceivablesHandler) Invoices(c *fiber.Ctx) error {
	if h.scopeAll(c) {
		return c.JSON(toInvoiceResponses(h.aggregator.AllInvoicesForUser(h.resolver.User())))
	}
	return c.JSON(toInvoiceResponses(h.aggregator.InvoicesByCompany(h.currentCompanyID())))
}

// Communications GET /api/communications[?scope=all]
func (h *ReceivablesHandler) Communications(c *fiber.Ctx) error {
	if h.scopeAll(c) {
		return c.JSON(toCommunicationResponses(h.aggregator.AllCommunicationsForUser(h.resolver.User())))
	}
	return c.JSON(toCommunicationResponses(h.aggregator.CommunicationsByCompany(h.currentCompanyID())))
}

// AgingReport GET /api/aging-report[?scope=all]
func (h *ReceivablesHandler) AgingReport(c *fiber.Ctx) error {
	if h.scopeAll(c) {
		return c.JSON(toAgingRowResponses(h.aggregator.AllAgingReportsForUser(h.resolver.User())))
	}
	return c.JSON(toAgingRowResponses(h.aggregator.AgingReportByCompany(h.currentCompanyID())))
}

// AgingSummary GET /api/aging-report/summary
// Total pendiente por tramo de la empresa activa.
func (h *ReceivablesHandler) AgingSummary(c *fiber.Ctx) error {
	return c.JSON(h.aggregator.AgingTotals(h.currentCompanyID()))
}
