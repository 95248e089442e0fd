package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/domain"
)

// SessionHandler expone el estado del resolver de sesión/tenancy.
type SessionHandler struct {
	resolver *session.Resolver
}

// NewSessionHandler construye el handler.
func NewSessionHandler(resolver *session.Resolver) *SessionHandler {
	return &SessionHandler{resolver: resolver}
}

// Get GET /api/session
// Devuelve usuario activo, empresa seleccionada, empresas visibles y flags
// de capacidades derivadas del rol.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	resp := dto.SessionResponse{
		User:            toUserResponse(h.resolver.User()),
		CurrentCompany:  toCompanyResponse(h.resolver.CurrentCompany()),
		IsLoading:       h.resolver.IsLoading(),
		IsAccountant:    h.resolver.IsAccountant(),
		CanManageUsers:  h.resolver.CanManageUsers(),
		CanEditSettings: h.resolver.CanEditSettings(),
	}
	companies := h.resolver.Companies()
	resp.Companies = make([]dto.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		resp.Companies = append(resp.Companies, *toCompanyResponse(comp))
	}
	return c.JSON(resp)
}

// SwitchCompany POST /api/session/company
// Cambia la empresa activa. Un destino inválido no muta nada y responde con
// el motivo; el estado queda como estaba.
func (h *SessionHandler) SwitchCompany(c *fiber.Ctx) error {
	var in dto.SwitchCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.resolver.SwitchCompany(in.CompanyID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSession):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
		case errors.Is(err, domain.ErrCompanyNotAccessible):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el usuario no tiene acceso a la empresa"})
		case errors.Is(err, domain.ErrCompanyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa inexistente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"current_company_id": in.CompanyID})
}
