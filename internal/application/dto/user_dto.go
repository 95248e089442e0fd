package dto

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Avatar           string   `json:"avatar"`
	Role             string   `json:"role"`
	CompanyIDs       []string `json:"company_ids"`
	DefaultCompanyID string   `json:"default_company_id"`
	IsAccountant     bool     `json:"is_accountant"`
}
