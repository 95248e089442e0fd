package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tramos de antigüedad de cartera (días de mora).
const (
	Bucket0To30  = "0-30"
	Bucket31To60 = "31-60"
	Bucket61To90 = "61-90"
	BucketOver90 = "90+"
)

// AgingBuckets tramos en orden de presentación.
var AgingBuckets = []string{Bucket0To30, Bucket31To60, Bucket61To90, BucketOver90}

// BucketFor clasifica días de mora en su tramo de antigüedad.
func BucketFor(daysOverdue int) string {
	switch {
	case daysOverdue <= 30:
		return Bucket0To30
	case daysOverdue <= 60:
		return Bucket31To60
	case daysOverdue <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// AgingReportRow representa una línea del reporte de antigüedad de cartera:
// una factura pendiente con sus días de mora y tramo.
type AgingReportRow struct {
	ID            string
	CompanyID     string
	CustomerID    string
	CustomerName  string
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	Amount        decimal.Decimal
	DaysOverdue   int
	AgingBucket   string // ver constantes Bucket*
	Outstanding   decimal.Decimal
}
