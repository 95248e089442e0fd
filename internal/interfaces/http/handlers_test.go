package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/collectfast-api/internal/application/auth"
	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/memory"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/mockdata"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/pdf"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/settings"
	apihttp "github.com/jhoicas/collectfast-api/internal/interfaces/http"
	"github.com/jhoicas/collectfast-api/pkg/logger"
)

// testEnv aplicación completa cableada sobre el dataset mock.
type testEnv struct {
	app      *fiber.App
	datasets map[string]mockdata.Dataset
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	datasets := mockdata.NewGenerator(11111, time.Now()).All()
	users := memory.NewUserDirectory(mockdata.Users(), mockdata.DefaultUserID)
	companies := memory.NewCompanyDirectory(mockdata.Companies())
	datasetStore := memory.NewDatasetStore(datasets)

	store, err := settings.NewFileStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)

	authStore := auth.NewStore()
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "error"}, io.Discard)
	resolver := session.NewResolver(users, companies, store, authStore, log)
	aggregator := reporting.NewAggregator(datasetStore)
	authUC := auth.NewAuthUseCase(authStore, users, store, resolver, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "collectfast-test",
	})

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		Resolver:   resolver,
		Aggregator: aggregator,
		AuthUC:     authUC,
		AgingPDF:   pdf.NewAgingReportPDFGenerator(),
		JWTSecret:  testSecret,
	})
	return &testEnv{app: app, datasets: datasets}
}

func (e *testEnv) signIn(t *testing.T, email string) dto.SignInResponse {
	t.Helper()
	body, _ := json.Marshal(dto.SignInRequest{Email: email, Password: "password123"})
	req := httptest.NewRequest("POST", "/api/auth/sign-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.SignInResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

// El sign-in mock siempre tiene éxito con entrada bien formada y redirige a
// los contadores a su dashboard.
func TestSignIn_Contadora(t *testing.T) {
	env := newTestEnv(t)

	out := env.signIn(t, "emma.wilson@accounting.com")

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user-emma-wilson", out.User.ID)
	assert.Equal(t, "/app/accountant-dashboard", out.RedirectTo)
}

// Entrada mal formada: 400 sin crear sesión.
func TestSignIn_Validacion(t *testing.T) {
	env := newTestEnv(t)

	cases := []dto.SignInRequest{
		{Email: "sin-arroba", Password: "password123"},
		{Email: "a@b.com", Password: "corta"},
		{Email: "", Password: "password123"},
	}
	for _, in := range cases {
		resp := env.do(t, "POST", "/api/auth/sign-in", "", in)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "caso %+v", in)
	}
}

// Email desconocido en el directorio: el sign-in igual resuelve sesión (el
// prototipo asume un contador).
func TestSignIn_EmailDesconocido(t *testing.T) {
	env := newTestEnv(t)

	out := env.signIn(t, "desconocido@example.com")

	assert.Equal(t, "user-emma-wilson", out.User.ID,
		"el flag de contador lleva al primer contador del directorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: sign-in, leer sesión, cambiar de empresa, releer.
func TestSessionFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "emma.wilson@accounting.com").Token

	resp := env.do(t, "GET", "/api/session", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sess := decode[dto.SessionResponse](t, resp)

	require.NotNil(t, sess.User)
	assert.Equal(t, "user-emma-wilson", sess.User.ID)
	require.NotNil(t, sess.CurrentCompany)
	assert.Equal(t, "techstart-001", sess.CurrentCompany.ID)
	assert.Len(t, sess.Companies, 3)
	assert.True(t, sess.IsAccountant)
	assert.False(t, sess.CanManageUsers)
	assert.False(t, sess.IsLoading)

	resp = env.do(t, "POST", "/api/session/company", token, dto.SwitchCompanyRequest{CompanyID: "metro-retail-003"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sess = decode[dto.SessionResponse](t, env.do(t, "GET", "/api/session", token, nil))
	require.NotNil(t, sess.CurrentCompany)
	assert.Equal(t, "metro-retail-003", sess.CurrentCompany.ID)
}

// Switch a una empresa fuera de la lista de acceso: 403 y estado intacto.
func TestSwitchCompany_Prohibido(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "john.smith@techstart.com").Token

	resp := env.do(t, "POST", "/api/session/company", token, dto.SwitchCompanyRequest{CompanyID: "greenleaf-002"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	sess := decode[dto.SessionResponse](t, env.do(t, "GET", "/api/session", token, nil))
	require.NotNil(t, sess.CurrentCompany)
	assert.Equal(t, "techstart-001", sess.CurrentCompany.ID)
}

// Las rutas protegidas exigen token.
func TestRutasProtegidas_SinToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/api/session", "/api/companies", "/api/customers",
		"/api/invoices", "/api/dashboard/summary",
	} {
		resp := env.do(t, "GET", path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "ruta %s", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas y colecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_ListYSummary(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "emma.wilson@accounting.com").Token

	companies := decode[[]dto.CompanyResponse](t, env.do(t, "GET", "/api/companies", token, nil))
	require.Len(t, companies, 3)
	assert.Equal(t, "techstart-001", companies[0].ID)

	summary := decode[dto.CompanySummaryDTO](t, env.do(t, "GET", "/api/companies/techstart-001/summary", token, nil))
	ds := env.datasets["techstart-001"]
	assert.Equal(t, len(ds.Invoices), summary.TotalInvoices)
	assert.Equal(t, len(ds.Customers), summary.TotalCustomers)

	// Un id desconocido no es 404: es el resumen en cero.
	zero := decode[dto.CompanySummaryDTO](t, env.do(t, "GET", "/api/companies/no-existe/summary", token, nil))
	assert.Equal(t, 0, zero.TotalInvoices)
}

// Las colecciones usan la empresa activa; ?scope=all concatena todas las
// empresas accesibles del usuario.
func TestInvoices_ScopePorDefectoYAll(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "emma.wilson@accounting.com").Token

	invoices := decode[[]dto.InvoiceResponse](t, env.do(t, "GET", "/api/invoices", token, nil))
	assert.Len(t, invoices, len(env.datasets["techstart-001"].Invoices))

	all := decode[[]dto.InvoiceResponse](t, env.do(t, "GET", "/api/invoices?scope=all", token, nil))
	want := 0
	for _, ds := range env.datasets {
		want += len(ds.Invoices)
	}
	assert.Len(t, all, want)
}

func TestAgingSummary(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "emma.wilson@accounting.com").Token

	totals := decode[[]dto.AgingBucketTotalDTO](t, env.do(t, "GET", "/api/aging-report/summary", token, nil))
	require.Len(t, totals, 4)
	assert.Equal(t, "0-30", totals[0].Bucket)
	assert.Equal(t, "90+", totals[3].Bucket)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboards y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "john.smith@techstart.com").Token

	resp := env.do(t, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardSummaryDTO](t, resp)

	assert.Equal(t, "techstart-001", out.Summary.CompanyID)
	assert.Len(t, out.AgingTotals, 4)
	assert.GreaterOrEqual(t, out.DSO, 0)
}

// El dashboard de contador exige el rol accountant en el token.
func TestDashboardAccountant_Roles(t *testing.T) {
	env := newTestEnv(t)

	founderToken := env.signIn(t, "john.smith@techstart.com").Token
	resp := env.do(t, "GET", "/api/dashboard/accountant", founderToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	accountantToken := env.signIn(t, "emma.wilson@accounting.com").Token
	resp = env.do(t, "GET", "/api/dashboard/accountant", accountantToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	overview := decode[dto.AccountantOverviewDTO](t, resp)

	assert.Equal(t, 3, overview.TotalCompanies)
	assert.Len(t, overview.Companies, 3)
}

// La exportación PDF devuelve un documento con el content-type correcto.
func TestAgingPDF(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "emma.wilson@accounting.com").Token

	resp := env.do(t, "GET", "/api/reports/aging.pdf", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.Contains(resp.Header.Get(fiber.HeaderContentDisposition), "aging-report-techstart-001"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
