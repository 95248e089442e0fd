// Package memory implementa los puertos de directorio y dataset sobre mapas
// inmutables construidos una sola vez al arrancar. No hay escritura: las
// colecciones viven lo que vive el proceso.
package memory

import (
	"strings"

	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/domain/repository"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/mockdata"
)

var (
	_ repository.UserDirectory     = (*UserDirectory)(nil)
	_ repository.CompanyDirectory  = (*CompanyDirectory)(nil)
	_ repository.DatasetRepository = (*DatasetStore)(nil)
)

// UserDirectory directorio estático de usuarios indexado por id y email.
type UserDirectory struct {
	users         []*entity.User
	byID          map[string]*entity.User
	byEmail       map[string]*entity.User
	defaultUserID string
}

// NewUserDirectory indexa la lista de usuarios. defaultUserID designa el
// usuario por defecto del prototipo.
func NewUserDirectory(users []*entity.User, defaultUserID string) *UserDirectory {
	d := &UserDirectory{
		users:         users,
		byID:          make(map[string]*entity.User, len(users)),
		byEmail:       make(map[string]*entity.User, len(users)),
		defaultUserID: defaultUserID,
	}
	for _, u := range users {
		d.byID[u.ID] = u
		d.byEmail[strings.ToLower(u.Email)] = u
	}
	return d
}

// GetByID busca un usuario por id, o nil.
func (d *UserDirectory) GetByID(id string) *entity.User {
	return d.byID[id]
}

// GetByEmail busca un usuario por email exacto (case-insensitive), o nil.
func (d *UserDirectory) GetByEmail(email string) *entity.User {
	return d.byEmail[strings.ToLower(email)]
}

// FirstAccountant devuelve el primer usuario contador, o nil si no hay.
func (d *UserDirectory) FirstAccountant() *entity.User {
	for _, u := range d.users {
		if u.IsAccountant {
			return u
		}
	}
	return nil
}

// DefaultUser devuelve el usuario designado por defecto del prototipo.
func (d *UserDirectory) DefaultUser() *entity.User {
	return d.byID[d.defaultUserID]
}

// List devuelve todos los usuarios en orden de definición.
func (d *UserDirectory) List() []*entity.User {
	return d.users
}

// CompanyDirectory directorio estático de empresas indexado por id.
type CompanyDirectory struct {
	companies []*entity.Company
	byID      map[string]*entity.Company
}

// NewCompanyDirectory indexa la lista de empresas.
func NewCompanyDirectory(companies []*entity.Company) *CompanyDirectory {
	d := &CompanyDirectory{
		companies: companies,
		byID:      make(map[string]*entity.Company, len(companies)),
	}
	for _, c := range companies {
		d.byID[c.ID] = c
	}
	return d
}

// GetByID busca la empresa por id, o nil.
func (d *CompanyDirectory) GetByID(id string) *entity.Company {
	return d.byID[id]
}

// List devuelve todas las empresas en orden de definición.
func (d *CompanyDirectory) List() []*entity.Company {
	return d.companies
}

// DatasetStore colecciones por empresa. Un companyID desconocido devuelve
// la colección vacía del Dataset cero, nunca error.
type DatasetStore struct {
	datasets map[string]mockdata.Dataset
}

// NewDatasetStore envuelve el mapa de datasets generado al arrancar.
func NewDatasetStore(datasets map[string]mockdata.Dataset) *DatasetStore {
	return &DatasetStore{datasets: datasets}
}

// CustomersByCompany clientes de la empresa en su orden almacenado.
func (s *DatasetStore) CustomersByCompany(companyID string) []entity.Customer {
	return s.datasets[companyID].Customers
}

// InvoicesByCompany facturas de la empresa en su orden almacenado.
func (s *DatasetStore) InvoicesByCompany(companyID string) []entity.Invoice {
	return s.datasets[companyID].Invoices
}

// CommunicationsByCompany comunicaciones de la empresa.
func (s *DatasetStore) CommunicationsByCompany(companyID string) []entity.Communication {
	return s.datasets[companyID].Communications
}

// AgingReportByCompany reporte de antigüedad de la empresa.
func (s *DatasetStore) AgingReportByCompany(companyID string) []entity.AgingReportRow {
	return s.datasets[companyID].AgingReport
}
