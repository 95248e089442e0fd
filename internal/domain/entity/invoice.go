package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice.
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
	InvoiceStatusDueSoon = "due-soon"
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
)

// Invoice representa una factura emitida a un cliente.
type Invoice struct {
	ID            string
	CompanyID     string
	InvoiceNumber string
	CustomerID    string
	CustomerName  string
	Amount        decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Status        string // paid, overdue, due-soon, draft, sent
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOutstanding indica si la factura sigue pendiente de cobro.
func (i *Invoice) IsOutstanding() bool {
	return i.Status != InvoiceStatusPaid
}
