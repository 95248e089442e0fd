package dto

import "github.com/shopspring/decimal"

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	ERPProvider    string `json:"erp_provider"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	AvgInvoices    int    `json:"avg_invoices"`
	Status         string `json:"status"`
	Timezone       string `json:"timezone"`
	Currency       string `json:"currency"`
}

// CompanySummaryDTO resumen derivado de una empresa.
//
// Nota de nombres heredada del prototipo: TotalInvoices cuenta TODAS las
// facturas mientras que TotalOutstanding suma solo las no pagadas. La
// asimetría se conserva tal cual (ver tests de reporting).
type CompanySummaryDTO struct {
	CompanyID             string          `json:"company_id"`
	TotalCustomers        int             `json:"total_customers"`
	TotalInvoices         int             `json:"total_invoices"`
	TotalOutstanding      decimal.Decimal `json:"total_outstanding"`
	OverdueInvoices       int             `json:"overdue_invoices"`
	TotalOutstandingAging decimal.Decimal `json:"total_outstanding_aging"`
}
