package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/collectfast-api/internal/application/auth"
	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/domain"
)

// AuthHandler maneja el sign-in/sign-out mock del prototipo.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignIn POST /api/auth/sign-in
// Siempre tiene éxito con entrada bien formada: fabrica el token y resuelve
// la sesión. No hay verificación real de credenciales.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SignIn(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email válido y contraseña de al menos 7 caracteres"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_USER", Message: "ningún usuario resoluble para la sesión"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// SignOut POST /api/auth/sign-out
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	h.uc.SignOut()
	return c.JSON(fiber.Map{"signed_out": true})
}
