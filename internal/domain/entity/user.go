package entity

// Roles válidos para User.
const (
	RoleFounder    = "founder"
	RoleAccountant = "accountant"
	RoleAdmin      = "admin"
	RoleViewer     = "viewer"
)

// User representa un usuario del sistema con acceso a una o varias empresas.
// CompanyIDs está ordenado; DefaultCompanyID, si no está vacío, debe
// pertenecer a CompanyIDs.
type User struct {
	ID               string
	Name             string
	Email            string
	Avatar           string
	Role             string // founder, accountant, admin, viewer
	CompanyIDs       []string
	DefaultCompanyID string
	IsAccountant     bool
}

// HasCompany indica si el usuario tiene acceso a la empresa dada.
func (u *User) HasCompany(companyID string) bool {
	for _, id := range u.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}

// CanManage indica si el rol permite administrar usuarios y editar configuración.
func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleFounder
}
