// Package mockdata produce el dataset sintético del prototipo: directorio
// estático de usuarios y empresas, y colecciones por empresa generadas con
// semilla fija (misma semilla => mismo dataset).
package mockdata

import "github.com/jhoicas/collectfast-api/internal/domain/entity"

// DefaultUserID usuario por defecto del prototipo (la contadora demo).
const DefaultUserID = "user-emma-wilson"

// Users devuelve el directorio estático de usuarios.
func Users() []*entity.User {
	return []*entity.User{
		{
			ID:               "user-john-smith",
			Name:             "John Smith",
			Email:            "john.smith@techstart.com",
			Avatar:           "/avatars/john-smith.jpg",
			Role:             entity.RoleFounder,
			CompanyIDs:       []string{"techstart-001"},
			DefaultCompanyID: "techstart-001",
			IsAccountant:     false,
		},
		{
			ID:               "user-sarah-johnson",
			Name:             "Sarah Johnson",
			Email:            "sarah@greenleaf.com",
			Avatar:           "/avatars/sarah-johnson.jpg",
			Role:             entity.RoleFounder,
			CompanyIDs:       []string{"greenleaf-002"},
			DefaultCompanyID: "greenleaf-002",
			IsAccountant:     false,
		},
		{
			ID:               "user-mike-chen",
			Name:             "Mike Chen",
			Email:            "mike.chen@metrogroup.com",
			Avatar:           "/avatars/mike-chen.jpg",
			Role:             entity.RoleFounder,
			CompanyIDs:       []string{"metro-retail-003"},
			DefaultCompanyID: "metro-retail-003",
			IsAccountant:     false,
		},
		{
			ID:               DefaultUserID,
			Name:             "Emma Wilson",
			Email:            "emma.wilson@accounting.com",
			Avatar:           "/avatars/emma-wilson.jpg",
			Role:             entity.RoleAccountant,
			CompanyIDs:       []string{"techstart-001", "greenleaf-002", "metro-retail-003"},
			DefaultCompanyID: "techstart-001",
			IsAccountant:     true,
		},
	}
}

// Companies devuelve el directorio estático de empresas (tenants).
func Companies() []*entity.Company {
	return []*entity.Company{
		{
			ID:             "techstart-001",
			Name:           "TechStart Inc.",
			Logo:           "/images/companies/techstart-logo.png",
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#60a5fa",
			ERPProvider:    entity.ERPQuickBooks,
			Industry:       "Software",
			CompanySize:    "Small (10-50 employees)",
			AvgInvoices:    45,
			Status:         entity.CompanyStatusActive,
			Timezone:       "America/New_York",
			Currency:       "USD",
		},
		{
			ID:             "greenleaf-002",
			Name:           "GreenLeaf Consulting",
			Logo:           "/images/companies/greenleaf-logo.png",
			PrimaryColor:   "#10b981",
			SecondaryColor: "#34d399",
			ERPProvider:    entity.ERPXero,
			Industry:       "Consulting",
			CompanySize:    "Small (5-20 employees)",
			AvgInvoices:    22,
			Status:         entity.CompanyStatusActive,
			Timezone:       "America/Los_Angeles",
			Currency:       "USD",
		},
		{
			ID:             "metro-retail-003",
			Name:           "Metro Retail Group",
			Logo:           "/images/companies/metro-retail-logo.png",
			PrimaryColor:   "#8b5cf6",
			SecondaryColor: "#a78bfa",
			ERPProvider:    entity.ERPQuickBooks,
			Industry:       "Retail",
			CompanySize:    "Medium (50-200 employees)",
			AvgInvoices:    78,
			Status:         entity.CompanyStatusActive,
			Timezone:       "America/Chicago",
			Currency:       "USD",
		},
	}
}
