// Package reporting contiene el agregador de datos por empresa: funciones
// puras sobre las colecciones estáticas del dataset, sin mutación ni I/O.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/domain/repository"
)

// Aggregator calcula resúmenes y vistas multi-empresa sobre el dataset.
// Un companyID desconocido nunca es error: produce listas vacías y resúmenes
// en cero.
type Aggregator struct {
	dataset repository.DatasetRepository
}

// NewAggregator construye el agregador sobre el puerto del dataset.
func NewAggregator(dataset repository.DatasetRepository) *Aggregator {
	return &Aggregator{dataset: dataset}
}

// CustomersByCompany devuelve los clientes de la empresa en su orden almacenado.
func (a *Aggregator) CustomersByCompany(companyID string) []entity.Customer {
	return a.dataset.CustomersByCompany(companyID)
}

// InvoicesByCompany devuelve las facturas de la empresa en su orden almacenado.
func (a *Aggregator) InvoicesByCompany(companyID string) []entity.Invoice {
	return a.dataset.InvoicesByCompany(companyID)
}

// CommunicationsByCompany devuelve las comunicaciones de la empresa.
func (a *Aggregator) CommunicationsByCompany(companyID string) []entity.Communication {
	return a.dataset.CommunicationsByCompany(companyID)
}

// AgingReportByCompany devuelve el reporte de antigüedad de la empresa.
func (a *Aggregator) AgingReportByCompany(companyID string) []entity.AgingReportRow {
	return a.dataset.AgingReportByCompany(companyID)
}

// AllCustomersForUser concatena los clientes de todas las empresas
// accesibles del usuario, en el orden de user.CompanyIDs.
func (a *Aggregator) AllCustomersForUser(user *entity.User) []entity.Customer {
	if user == nil {
		return nil
	}
	var all []entity.Customer
	for _, id := range user.CompanyIDs {
		all = append(all, a.dataset.CustomersByCompany(id)...)
	}
	return all
}

// AllInvoicesForUser concatena las facturas de todas las empresas accesibles
// del usuario, en el orden de user.CompanyIDs.
func (a *Aggregator) AllInvoicesForUser(user *entity.User) []entity.Invoice {
	if user == nil {
		return nil
	}
	var all []entity.Invoice
	for _, id := range user.CompanyIDs {
		all = append(all, a.dataset.InvoicesByCompany(id)...)
	}
	return all
}

// AllCommunicationsForUser concatena las comunicaciones de todas las
// empresas accesibles del usuario.
func (a *Aggregator) AllCommunicationsForUser(user *entity.User) []entity.Communication {
	if user == nil {
		return nil
	}
	var all []entity.Communication
	for _, id := range user.CompanyIDs {
		all = append(all, a.dataset.CommunicationsByCompany(id)...)
	}
	return all
}

// AllAgingReportsForUser concatena los reportes de antigüedad de todas las
// empresas accesibles del usuario.
func (a *Aggregator) AllAgingReportsForUser(user *entity.User) []entity.AgingReportRow {
	if user == nil {
		return nil
	}
	var all []entity.AgingReportRow
	for _, id := range user.CompanyIDs {
		all = append(all, a.dataset.AgingReportByCompany(id)...)
	}
	return all
}

// CompanySummary calcula el resumen de la empresa a partir de sus clientes,
// facturas y reporte de antigüedad. Sumas monetarias en decimal.
//
// TotalInvoices cuenta todas las facturas (no solo pendientes); la asimetría
// de nombres viene del prototipo y se conserva a propósito.
func (a *Aggregator) CompanySummary(companyID string) dto.CompanySummaryDTO {
	customers := a.dataset.CustomersByCompany(companyID)
	invoices := a.dataset.InvoicesByCompany(companyID)
	agingRows := a.dataset.AgingReportByCompany(companyID)

	totalOutstanding := decimal.Zero
	overdue := 0
	for i := range invoices {
		if invoices[i].Status != entity.InvoiceStatusPaid {
			totalOutstanding = totalOutstanding.Add(invoices[i].Amount)
		}
		if invoices[i].Status == entity.InvoiceStatusOverdue {
			overdue++
		}
	}

	totalAging := decimal.Zero
	for i := range agingRows {
		totalAging = totalAging.Add(agingRows[i].Outstanding)
	}

	return dto.CompanySummaryDTO{
		CompanyID:             companyID,
		TotalCustomers:        len(customers),
		TotalInvoices:         len(invoices),
		TotalOutstanding:      totalOutstanding,
		OverdueInvoices:       overdue,
		TotalOutstandingAging: totalAging,
	}
}

// AgingTotals total pendiente por tramo de antigüedad, en el orden de
// presentación 0-30, 31-60, 61-90, 90+.
func (a *Aggregator) AgingTotals(companyID string) []dto.AgingBucketTotalDTO {
	totals := make(map[string]decimal.Decimal, len(entity.AgingBuckets))
	for _, b := range entity.AgingBuckets {
		totals[b] = decimal.Zero
	}
	for _, row := range a.dataset.AgingReportByCompany(companyID) {
		totals[row.AgingBucket] = totals[row.AgingBucket].Add(row.Amount)
	}
	out := make([]dto.AgingBucketTotalDTO, 0, len(entity.AgingBuckets))
	for _, b := range entity.AgingBuckets {
		out = append(out, dto.AgingBucketTotalDTO{Bucket: b, Outstanding: totals[b]})
	}
	return out
}

// DSO aproxima Days Sales Outstanding: días transcurridos desde la emisión
// de la factura impaga más antigua, a la fecha asOf. Cero sin facturas impagas.
func (a *Aggregator) DSO(companyID string, asOf time.Time) int {
	var oldest *time.Time
	invoices := a.dataset.InvoicesByCompany(companyID)
	for i := range invoices {
		if invoices[i].Status == entity.InvoiceStatusPaid {
			continue
		}
		issue := invoices[i].IssueDate
		if oldest == nil || issue.Before(*oldest) {
			oldest = &issue
		}
	}
	if oldest == nil {
		return 0
	}
	days := int(asOf.Sub(*oldest).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// AccountantOverview agrega las métricas de todas las empresas accesibles
// del usuario para el dashboard de contador, más la tarjeta por empresa.
// companies debe venir ya resuelto (orden de acceso del usuario).
func (a *Aggregator) AccountantOverview(companies []*entity.Company) dto.AccountantOverviewDTO {
	overview := dto.AccountantOverviewDTO{
		TotalCompanies:   len(companies),
		TotalOutstanding: decimal.Zero,
		Companies:        make([]dto.CompanyCardDTO, 0, len(companies)),
	}
	for _, c := range companies {
		summary := a.CompanySummary(c.ID)
		overview.TotalOutstanding = overview.TotalOutstanding.Add(summary.TotalOutstanding)
		overview.TotalInvoices += summary.TotalInvoices
		overview.TotalOverdue += summary.OverdueInvoices
		overview.Companies = append(overview.Companies, dto.CompanyCardDTO{
			Company: companyToResponse(c),
			Summary: summary,
		})
	}
	return overview
}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Logo:           c.Logo,
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		ERPProvider:    c.ERPProvider,
		Industry:       c.Industry,
		CompanySize:    c.CompanySize,
		AvgInvoices:    c.AvgInvoices,
		Status:         c.Status,
		Timezone:       c.Timezone,
		Currency:       c.Currency,
	}
}
