package mockdata

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/collectfast-api/internal/domain/entity"
)

// Dataset colecciones generadas de una empresa.
type Dataset struct {
	Customers      []entity.Customer
	Invoices       []entity.Invoice
	Communications []entity.Communication
	AgingReport    []entity.AgingReportRow
}

// Generator produce los datasets sintéticos por empresa. La generación es
// determinista: misma semilla y misma fecha ancla => mismo dataset. La fecha
// ancla fija el "hoy" contra el que se calculan vencimientos y días de mora.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator construye el generador con semilla fija y fecha ancla.
func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now.Truncate(24 * time.Hour),
	}
}

// All genera el dataset de cada empresa del directorio, en el orden del
// directorio (el orden importa para la reproducibilidad).
func (g *Generator) All() map[string]Dataset {
	out := make(map[string]Dataset)
	for _, c := range Companies() {
		out[c.ID] = g.DatasetFor(c)
	}
	return out
}

// DatasetFor genera las colecciones de una empresa. La cantidad de facturas
// sale de la pista AvgInvoices de la empresa; clientes y comunicaciones se
// derivan proporcionalmente. Las filas de antigüedad se derivan de las
// facturas pendientes para que reporte y facturación cuadren entre sí.
func (g *Generator) DatasetFor(c *entity.Company) Dataset {
	customerCount := c.AvgInvoices / 3
	if customerCount < 6 {
		customerCount = 6
	}

	customers := g.customers(c, customerCount)
	invoices := g.invoices(c, customers)
	g.applyInvoiceAggregates(customers, invoices)
	comms := g.communications(c, invoices)
	aging := g.agingReport(invoices)

	return Dataset{
		Customers:      customers,
		Invoices:       invoices,
		Communications: comms,
		AgingReport:    aging,
	}
}

func (g *Generator) customers(c *entity.Company, count int) []entity.Customer {
	list := make([]entity.Customer, 0, count)
	for i := 0; i < count; i++ {
		created := g.faker.DateRange(g.now.AddDate(-2, 0, 0), g.now.AddDate(0, -1, 0))
		list = append(list, entity.Customer{
			ID:               g.faker.UUID(),
			CompanyID:        c.ID,
			Name:             g.faker.Company(),
			Email:            g.faker.Email(),
			Phone:            g.faker.Phone(),
			TotalOutstanding: decimal.Zero,
			Status:           entity.CustomerStatusActive,
			CreatedAt:        created,
			UpdatedAt:        g.now,
		})
	}
	return list
}

func (g *Generator) invoices(c *entity.Company, customers []entity.Customer) []entity.Invoice {
	list := make([]entity.Invoice, 0, c.AvgInvoices)
	for i := 0; i < c.AvgInvoices; i++ {
		cust := &customers[g.faker.Number(0, len(customers)-1)]
		issue := g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now.AddDate(0, 0, -7))
		terms := []int{15, 30, 45, 60}[g.faker.Number(0, 3)]
		due := issue.AddDate(0, 0, terms)
		amount := decimal.NewFromFloat(g.faker.Price(500, 15000)).Round(2)

		inv := entity.Invoice{
			ID:            g.faker.UUID(),
			CompanyID:     c.ID,
			InvoiceNumber: fmt.Sprintf("INV-%06d", g.faker.Number(0, 999999)),
			CustomerID:    cust.ID,
			CustomerName:  cust.Name,
			Amount:        amount,
			IssueDate:     issue,
			DueDate:       due,
			CreatedAt:     issue,
			UpdatedAt:     g.now,
		}
		inv.Status = g.invoiceStatus(issue, due)
		if inv.Status == entity.InvoiceStatusPaid {
			paid := g.faker.DateRange(issue, g.now)
			inv.PaidDate = &paid
		}
		list = append(list, inv)
	}
	return list
}

// invoiceStatus deriva el estado de las fechas más un sorteo: ~45% pagadas,
// ~5% borradores, el resto según vencimiento (vencida, por vencer, enviada).
func (g *Generator) invoiceStatus(issue, due time.Time) string {
	roll := g.faker.Number(1, 100)
	switch {
	case roll <= 45:
		return entity.InvoiceStatusPaid
	case roll > 95:
		return entity.InvoiceStatusDraft
	case due.Before(g.now):
		return entity.InvoiceStatusOverdue
	case due.Before(g.now.AddDate(0, 0, 7)):
		return entity.InvoiceStatusDueSoon
	default:
		return entity.InvoiceStatusSent
	}
}

// applyInvoiceAggregates completa en cada cliente los campos derivados de
// sus facturas: conteo, total pendiente, última fecha de pago y estado.
func (g *Generator) applyInvoiceAggregates(customers []entity.Customer, invoices []entity.Invoice) {
	byID := make(map[string]*entity.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}
	for i := range invoices {
		cust, ok := byID[invoices[i].CustomerID]
		if !ok {
			continue
		}
		cust.InvoiceCount++
		switch invoices[i].Status {
		case entity.InvoiceStatusPaid:
			if pd := invoices[i].PaidDate; pd != nil {
				if cust.LastPaymentDate == nil || pd.After(*cust.LastPaymentDate) {
					cust.LastPaymentDate = pd
				}
			}
		case entity.InvoiceStatusOverdue:
			cust.TotalOutstanding = cust.TotalOutstanding.Add(invoices[i].Amount)
			cust.Status = entity.CustomerStatusOverdue
		default:
			cust.TotalOutstanding = cust.TotalOutstanding.Add(invoices[i].Amount)
		}
	}
}

var commTemplates = []string{"friendly-reminder", "first-notice", "second-notice", "final-notice"}

func (g *Generator) communications(c *entity.Company, invoices []entity.Invoice) []entity.Communication {
	types := []string{
		entity.CommTypeEmail, entity.CommTypeSMS, entity.CommTypeCall,
		entity.CommTypeReminder, entity.CommTypeLetter,
	}
	var list []entity.Communication
	for i := range invoices {
		if invoices[i].Status == entity.InvoiceStatusPaid || invoices[i].Status == entity.InvoiceStatusDraft {
			continue
		}
		// No toda factura pendiente tiene gestión de cobro todavía.
		if g.faker.Number(1, 100) > 60 {
			continue
		}
		sent := g.faker.DateRange(invoices[i].IssueDate, g.now)
		comm := entity.Communication{
			ID:               g.faker.UUID(),
			CompanyID:        c.ID,
			CustomerID:       invoices[i].CustomerID,
			CustomerName:     invoices[i].CustomerName,
			Type:             types[g.faker.Number(0, len(types)-1)],
			Subject:          fmt.Sprintf("Payment reminder: %s", invoices[i].InvoiceNumber),
			Message:          g.faker.Sentence(12),
			Status:           g.commStatus(),
			SentDate:         sent,
			Template:         commTemplates[g.faker.Number(0, len(commTemplates)-1)],
			RelatedInvoiceID: invoices[i].ID,
			CreatedAt:        sent,
			UpdatedAt:        g.now,
		}
		if comm.Status == entity.CommStatusScheduled {
			scheduled := g.faker.DateRange(g.now, g.now.AddDate(0, 0, 14))
			comm.ScheduledDate = &scheduled
		}
		list = append(list, comm)
	}
	return list
}

func (g *Generator) commStatus() string {
	switch roll := g.faker.Number(1, 100); {
	case roll <= 35:
		return entity.CommStatusSent
	case roll <= 60:
		return entity.CommStatusDelivered
	case roll <= 80:
		return entity.CommStatusRead
	case roll <= 90:
		return entity.CommStatusScheduled
	default:
		return entity.CommStatusFailed
	}
}

// agingReport deriva una fila por factura pendiente (ni pagada ni borrador).
// Outstanding coincide con el monto de la factura; el tramo sale de los días
// de mora contra la fecha ancla.
func (g *Generator) agingReport(invoices []entity.Invoice) []entity.AgingReportRow {
	var rows []entity.AgingReportRow
	for i := range invoices {
		if invoices[i].Status == entity.InvoiceStatusPaid || invoices[i].Status == entity.InvoiceStatusDraft {
			continue
		}
		daysOverdue := int(g.now.Sub(invoices[i].DueDate).Hours() / 24)
		if daysOverdue < 0 {
			daysOverdue = 0
		}
		rows = append(rows, entity.AgingReportRow{
			ID:            g.faker.UUID(),
			CompanyID:     invoices[i].CompanyID,
			CustomerID:    invoices[i].CustomerID,
			CustomerName:  invoices[i].CustomerName,
			InvoiceNumber: invoices[i].InvoiceNumber,
			InvoiceDate:   invoices[i].IssueDate,
			DueDate:       invoices[i].DueDate,
			Amount:        invoices[i].Amount,
			DaysOverdue:   daysOverdue,
			AgingBucket:   entity.BucketFor(daysOverdue),
			Outstanding:   invoices[i].Amount,
		})
	}
	return rows
}
