package http

import (
	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
)

// Mapeos entity -> DTO compartidos por los handlers de este paquete.

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Avatar:           u.Avatar,
		Role:             u.Role,
		CompanyIDs:       u.CompanyIDs,
		DefaultCompanyID: u.DefaultCompanyID,
		IsAccountant:     u.IsAccountant,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Logo:           c.Logo,
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		ERPProvider:    c.ERPProvider,
		Industry:       c.Industry,
		CompanySize:    c.CompanySize,
		AvgInvoices:    c.AvgInvoices,
		Status:         c.Status,
		Timezone:       c.Timezone,
		Currency:       c.Currency,
	}
}

func toCustomerResponses(list []entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for i := range list {
		c := &list[i]
		out = append(out, dto.CustomerResponse{
			ID:               c.ID,
			CompanyID:        c.CompanyID,
			Name:             c.Name,
			Email:            c.Email,
			Phone:            c.Phone,
			TotalOutstanding: c.TotalOutstanding,
			InvoiceCount:     c.InvoiceCount,
			Status:           c.Status,
			LastPaymentDate:  c.LastPaymentDate,
		})
	}
	return out
}

func toInvoiceResponses(list []entity.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(list))
	for i := range list {
		inv := &list[i]
		out = append(out, dto.InvoiceResponse{
			ID:            inv.ID,
			CompanyID:     inv.CompanyID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerID:    inv.CustomerID,
			CustomerName:  inv.CustomerName,
			Amount:        inv.Amount,
			IssueDate:     inv.IssueDate,
			DueDate:       inv.DueDate,
			Status:        inv.Status,
			PaidDate:      inv.PaidDate,
		})
	}
	return out
}

func toCommunicationResponses(list []entity.Communication) []dto.CommunicationResponse {
	out := make([]dto.CommunicationResponse, 0, len(list))
	for i := range list {
		cm := &list[i]
		out = append(out, dto.CommunicationResponse{
			ID:               cm.ID,
			CompanyID:        cm.CompanyID,
			CustomerID:       cm.CustomerID,
			CustomerName:     cm.CustomerName,
			Type:             cm.Type,
			Subject:          cm.Subject,
			Status:           cm.Status,
			SentDate:         cm.SentDate,
			ScheduledDate:    cm.ScheduledDate,
			Template:         cm.Template,
			RelatedInvoiceID: cm.RelatedInvoiceID,
		})
	}
	return out
}

func toAgingRowResponses(list []entity.AgingReportRow) []dto.AgingRowResponse {
	out := make([]dto.AgingRowResponse, 0, len(list))
	for i := range list {
		r := &list[i]
		out = append(out, dto.AgingRowResponse{
			ID:            r.ID,
			CompanyID:     r.CompanyID,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			InvoiceNumber: r.InvoiceNumber,
			InvoiceDate:   r.InvoiceDate,
			DueDate:       r.DueDate,
			Amount:        r.Amount,
			DaysOverdue:   r.DaysOverdue,
			AgingBucket:   r.AgingBucket,
			Outstanding:   r.Outstanding,
		})
	}
	return out
}
