package repository

import "github.com/jhoicas/collectfast-api/internal/domain/entity"

// DatasetRepository define el puerto de lectura de las colecciones por
// empresa (clientes, facturas, comunicaciones, antigüedad de cartera).
// Las colecciones son inmutables y están ordenadas; un companyID desconocido
// devuelve lista vacía, nunca error.
type DatasetRepository interface {
	CustomersByCompany(companyID string) []entity.Customer
	InvoicesByCompany(companyID string) []entity.Invoice
	CommunicationsByCompany(companyID string) []entity.Communication
	AgingReportByCompany(companyID string) []entity.AgingReportRow
}
