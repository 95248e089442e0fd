package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerResponse representación pública de un cliente deudor.
type CustomerResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	InvoiceCount     int             `json:"invoice_count"`
	Status           string          `json:"status"`
	LastPaymentDate  *time.Time      `json:"last_payment_date"`
}

// InvoiceResponse representación pública de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	PaidDate      *time.Time      `json:"paid_date"`
}

// CommunicationResponse representación pública de una comunicación de cobro.
type CommunicationResponse struct {
	ID               string     `json:"id"`
	CompanyID        string     `json:"company_id"`
	CustomerID       string     `json:"customer_id"`
	CustomerName     string     `json:"customer_name"`
	Type             string     `json:"type"`
	Subject          string     `json:"subject"`
	Status           string     `json:"status"`
	SentDate         time.Time  `json:"sent_date"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	Template         string     `json:"template,omitempty"`
	RelatedInvoiceID string     `json:"related_invoice_id,omitempty"`
}

// AgingRowResponse línea del reporte de antigüedad de cartera.
type AgingRowResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
	DaysOverdue   int             `json:"days_overdue"`
	AgingBucket   string          `json:"aging_bucket"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}
