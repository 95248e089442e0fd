package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de la empresa activa: resumen de cartera, DSO aproximado y totales
// por tramo de antigüedad.
type DashboardSummaryDTO struct {
	Summary CompanySummaryDTO `json:"summary"`

	// DSO aproximado: días desde la emisión de la factura impaga más antigua.
	DSO int `json:"dso"`

	// Total pendiente por tramo de antigüedad, en el orden 0-30, 31-60, 61-90, 90+.
	AgingTotals []AgingBucketTotalDTO `json:"aging_totals"`
}

// AgingBucketTotalDTO total pendiente de un tramo de antigüedad.
type AgingBucketTotalDTO struct {
	Bucket      string          `json:"bucket"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// AccountantOverviewDTO respuesta de GET /api/dashboard/accountant.
// Métricas agregadas sobre todas las empresas del contador, más una tarjeta
// por empresa con su resumen individual.
type AccountantOverviewDTO struct {
	TotalCompanies   int             `json:"total_companies"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalInvoices    int             `json:"total_invoices"`
	TotalOverdue     int             `json:"total_overdue"`

	Companies []CompanyCardDTO `json:"companies"`
}

// CompanyCardDTO tarjeta de empresa del dashboard de contador.
type CompanyCardDTO struct {
	Company CompanyResponse   `json:"company"`
	Summary CompanySummaryDTO `json:"summary"`
}
