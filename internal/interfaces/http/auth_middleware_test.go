package http_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/jhoicas/collectfast-api/internal/interfaces/http"
	"github.com/jhoicas/collectfast-api/pkg/jwt"
	"github.com/jhoicas/collectfast-api/pkg/logger"
)

const testSecret = "secreto-de-test"

func protectedApp(secret string, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{apihttp.AuthMiddleware(secret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apihttp.GetUserID(c),
			"email":   apihttp.GetEmail(c),
			"role":    apihttp.GetRole(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

// Token válido: pasa y los claims quedan en el contexto.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := jwt.Generate(testSecret, "user-1", "a@b.com", "founder", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Sin header de autorización: 401.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := protectedApp(testSecret)

	resp, err := app.Test(httptest.NewRequest("GET", "/protegida", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Header sin el esquema Bearer: 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := protectedApp(testSecret)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secreto: 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := jwt.Generate("otro-secreto", "user-1", "a@b.com", "founder", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Token expirado: 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := protectedApp(testSecret)

	claims := jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
		UserID: "user-1",
	}
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// RequireRole: rol permitido pasa, rol ajeno 403.
func TestRequireRole(t *testing.T) {
	app := protectedApp(testSecret, apihttp.RequireRole("accountant"))

	asRole := func(role string) int {
		token, err := jwt.Generate(testSecret, "user-1", "a@b.com", role, "test", 60)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, asRole("accountant"))
	assert.Equal(t, fiber.StatusForbidden, asRole("founder"))
}

// RequestLogger asigna un request id y lo devuelve en la respuesta;
// un X-Request-ID entrante se respeta.
func TestRequestLogger_RequestID(t *testing.T) {
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "error"}, io.Discard)
	app := fiber.New()
	app.Use(apihttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "id-del-cliente")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "id-del-cliente", resp.Header.Get(fiber.HeaderXRequestID))
}

// Token bien firmado pero sin claim de rol: RequireRole responde 401.
func TestRequireRole_SinRol(t *testing.T) {
	app := protectedApp(testSecret, apihttp.RequireRole("accountant"))
	token, err := jwt.Generate(testSecret, "user-1", "a@b.com", "", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
