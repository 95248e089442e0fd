package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Customer.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusOverdue  = "overdue"
	CustomerStatusOnHold   = "on-hold"
)

// Customer representa un cliente deudor de la empresa.
type Customer struct {
	ID               string
	CompanyID        string
	Name             string
	Email            string
	Phone            string
	TotalOutstanding decimal.Decimal
	InvoiceCount     int
	Status           string // active, inactive, overdue, on-hold
	LastPaymentDate  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
