package dto

// SessionResponse estado de sesión publicado por el resolver de tenancy.
type SessionResponse struct {
	User            *UserResponse     `json:"user"`
	CurrentCompany  *CompanyResponse  `json:"current_company"`
	Companies       []CompanyResponse `json:"companies"`
	IsLoading       bool              `json:"is_loading"`
	IsAccountant    bool              `json:"is_accountant"`
	CanManageUsers  bool              `json:"can_manage_users"`
	CanEditSettings bool              `json:"can_edit_settings"`
}

// SwitchCompanyRequest cuerpo de POST /api/session/company.
type SwitchCompanyRequest struct {
	CompanyID string `json:"company_id"`
}
