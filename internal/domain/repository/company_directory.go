package repository

import "github.com/jhoicas/collectfast-api/internal/domain/entity"

// CompanyDirectory define el puerto de lectura del directorio de empresas (DIP).
// Solo lookup por ID; el directorio es estático durante la vida del proceso.
type CompanyDirectory interface {
	GetByID(id string) *entity.Company
	List() []*entity.Company
}
