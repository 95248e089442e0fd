package mockdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/mockdata"
)

var anchor = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

// Misma semilla y misma fecha ancla => exactamente el mismo dataset.
func TestGenerator_Determinista(t *testing.T) {
	a := mockdata.NewGenerator(11111, anchor).All()
	b := mockdata.NewGenerator(11111, anchor).All()

	require.Equal(t, len(a), len(b))
	for id := range a {
		assert.Equal(t, a[id].Customers, b[id].Customers, "clientes de %s", id)
		assert.Equal(t, a[id].Invoices, b[id].Invoices, "facturas de %s", id)
		assert.Equal(t, a[id].Communications, b[id].Communications, "comunicaciones de %s", id)
		assert.Equal(t, a[id].AgingReport, b[id].AgingReport, "antigüedad de %s", id)
	}
}

// Semillas distintas producen datasets distintos.
func TestGenerator_SemillaCambiaDataset(t *testing.T) {
	a := mockdata.NewGenerator(11111, anchor).All()
	b := mockdata.NewGenerator(22222, anchor).All()

	assert.NotEqual(t, a["techstart-001"].Invoices, b["techstart-001"].Invoices)
}

// Cada empresa del directorio recibe su dataset, con tamaños guiados por
// AvgInvoices.
func TestGenerator_TamanosPorEmpresa(t *testing.T) {
	datasets := mockdata.NewGenerator(11111, anchor).All()

	for _, c := range mockdata.Companies() {
		ds, ok := datasets[c.ID]
		require.True(t, ok, "falta dataset de %s", c.ID)
		assert.Len(t, ds.Invoices, c.AvgInvoices)

		wantCustomers := c.AvgInvoices / 3
		if wantCustomers < 6 {
			wantCustomers = 6
		}
		assert.Len(t, ds.Customers, wantCustomers)
	}
}

// Consistencia del dataset generado: ids que resuelven, fechas coherentes,
// estados dentro del vocabulario.
func TestGenerator_Consistencia(t *testing.T) {
	datasets := mockdata.NewGenerator(11111, anchor).All()
	validStatus := map[string]bool{
		entity.InvoiceStatusPaid:    true,
		entity.InvoiceStatusOverdue: true,
		entity.InvoiceStatusDueSoon: true,
		entity.InvoiceStatusDraft:   true,
		entity.InvoiceStatusSent:    true,
	}

	for companyID, ds := range datasets {
		customerIDs := make(map[string]bool, len(ds.Customers))
		for i := range ds.Customers {
			assert.Equal(t, companyID, ds.Customers[i].CompanyID)
			customerIDs[ds.Customers[i].ID] = true
		}

		for i := range ds.Invoices {
			inv := &ds.Invoices[i]
			assert.Equal(t, companyID, inv.CompanyID)
			assert.True(t, customerIDs[inv.CustomerID], "factura %s apunta a cliente inexistente", inv.ID)
			assert.True(t, validStatus[inv.Status], "estado desconocido %q", inv.Status)
			assert.True(t, inv.DueDate.After(inv.IssueDate))
			assert.True(t, inv.Amount.IsPositive())
			if inv.Status == entity.InvoiceStatusPaid {
				require.NotNil(t, inv.PaidDate)
				assert.False(t, inv.PaidDate.Before(inv.IssueDate))
			}
		}
	}
}

// El reporte de antigüedad tiene exactamente una fila por factura pendiente
// (ni pagada ni borrador) y cuadra monto a monto con la facturación.
func TestGenerator_AntiguedadCuadraConFacturas(t *testing.T) {
	datasets := mockdata.NewGenerator(11111, anchor).All()

	for companyID, ds := range datasets {
		// Las filas se derivan de las facturas pendientes en su mismo orden.
		var outstanding []*entity.Invoice
		for i := range ds.Invoices {
			if ds.Invoices[i].Status == entity.InvoiceStatusPaid ||
				ds.Invoices[i].Status == entity.InvoiceStatusDraft {
				continue
			}
			outstanding = append(outstanding, &ds.Invoices[i])
		}

		require.Len(t, ds.AgingReport, len(outstanding), "empresa %s", companyID)
		for i := range ds.AgingReport {
			row := &ds.AgingReport[i]
			inv := outstanding[i]
			assert.Equal(t, inv.InvoiceNumber, row.InvoiceNumber)
			assert.Equal(t, inv.CustomerID, row.CustomerID)
			assert.True(t, row.Amount.Equal(inv.Amount))
			assert.True(t, row.Outstanding.Equal(inv.Amount))
			assert.Equal(t, entity.BucketFor(row.DaysOverdue), row.AgingBucket)
			assert.GreaterOrEqual(t, row.DaysOverdue, 0)
		}
	}
}

// Las comunicaciones siempre referencian facturas pendientes de la empresa.
func TestGenerator_ComunicacionesReferencianFacturas(t *testing.T) {
	datasets := mockdata.NewGenerator(11111, anchor).All()

	for companyID, ds := range datasets {
		byID := make(map[string]*entity.Invoice, len(ds.Invoices))
		for i := range ds.Invoices {
			byID[ds.Invoices[i].ID] = &ds.Invoices[i]
		}
		for i := range ds.Communications {
			comm := &ds.Communications[i]
			assert.Equal(t, companyID, comm.CompanyID)
			inv, ok := byID[comm.RelatedInvoiceID]
			require.True(t, ok, "comunicación %s sin factura", comm.ID)
			assert.NotEqual(t, entity.InvoiceStatusPaid, inv.Status)
			assert.NotEqual(t, entity.InvoiceStatusDraft, inv.Status)
			if comm.Status == entity.CommStatusScheduled {
				assert.NotNil(t, comm.ScheduledDate)
			}
		}
	}
}

// El directorio estático es coherente: todo CompanyID de usuario resuelve a
// una empresa y la empresa por defecto está en la lista de acceso.
func TestDirectorioEstatico(t *testing.T) {
	companies := make(map[string]bool)
	for _, c := range mockdata.Companies() {
		companies[c.ID] = true
	}

	var defaultFound bool
	for _, u := range mockdata.Users() {
		if u.ID == mockdata.DefaultUserID {
			defaultFound = true
		}
		require.NotEmpty(t, u.CompanyIDs, "usuario %s sin empresas", u.ID)
		for _, id := range u.CompanyIDs {
			assert.True(t, companies[id], "usuario %s referencia empresa inexistente %s", u.ID, id)
		}
		assert.True(t, u.HasCompany(u.DefaultCompanyID),
			"la empresa por defecto de %s debe estar en su lista de acceso", u.ID)
	}
	assert.True(t, defaultFound, "el usuario por defecto debe existir en el directorio")
}
