package entity

// Proveedores de sistema contable soportados por el conector mock.
const (
	ERPQuickBooks = "quickbooks"
	ERPXero       = "xero"
	ERPFreshBooks = "freshbooks"
)

// Estados válidos para Company.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
	CompanyStatusInactive  = "inactive"
)

// Company representa una organización/tenant cuyas cuentas por cobrar se
// gestionan en el dashboard. Solo lectura: el directorio es estático.
type Company struct {
	ID             string
	Name           string
	Logo           string
	PrimaryColor   string
	SecondaryColor string
	ERPProvider    string // quickbooks, xero, freshbooks
	Industry       string
	CompanySize    string
	AvgInvoices    int    // pista para el generador de datos mock
	Status         string // active, suspended, inactive
	Timezone       string
	Currency       string
}
