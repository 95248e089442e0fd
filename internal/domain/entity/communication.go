package entity

import "time"

// Tipos de comunicación de cobro.
const (
	CommTypeEmail    = "email"
	CommTypeSMS      = "sms"
	CommTypeCall     = "call"
	CommTypeReminder = "reminder"
	CommTypeLetter   = "letter"
)

// Estados válidos para Communication.
const (
	CommStatusSent      = "sent"
	CommStatusDelivered = "delivered"
	CommStatusRead      = "read"
	CommStatusFailed    = "failed"
	CommStatusScheduled = "scheduled"
)

// Communication representa un contacto de cobro enviado a un cliente
// (recordatorio de pago, llamada, carta, etc).
type Communication struct {
	ID               string
	CompanyID        string
	CustomerID       string
	CustomerName     string
	Type             string // email, sms, call, reminder, letter
	Subject          string
	Message          string
	Status           string // sent, delivered, read, failed, scheduled
	SentDate         time.Time
	ScheduledDate    *time.Time
	Template         string
	RelatedInvoiceID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
