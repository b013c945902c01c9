package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jfsolarte/inventario-ventas/internal/interfaces/http"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	pkgjwt "github.com/jfsolarte/inventario-ventas/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "vendedor1"
	testIssuer    = "inventario-ventas-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(permission, group string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(permission, group),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con los grupos y permisos indicados.
func tokenFor(t *testing.T, groups, permissions []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, groups, permissions, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission — permiso puntual O grupo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario pertenece al grupo → debe pasar (HTTP 200).
func TestRequirePermission_GrupoVendedorAccede(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, tokenFor(t, []string{entity.GroupVendedor}, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"miembro del grupo vendedor debe poder acceder a rutas de ventas")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUsername, body["username"])
}

// Caso 1b: Sin grupo pero con el permiso puntual → HTTP 200.
func TestRequirePermission_PermisoPuntualAccede(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, tokenFor(t, nil, []string{apphttp.PermSalesManage}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el permiso puntual habilita aunque no pertenezca al grupo")
}

// Caso 2: Grupo de otra área y sin permiso → HTTP 403 Forbidden.
func TestRequirePermission_GrupoBodegaBloqueadoEnVentas(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, tokenFor(t, []string{entity.GroupBodega}, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"bodega no debe poder mutar ventas")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: Vendedor bloqueado en ruta de inventario → HTTP 403.
func TestRequirePermission_VendedorBloqueadoEnInventario(t *testing.T) {
	app := buildTestApp(apphttp.PermInventoryManage, entity.GroupBodega)
	resp := doRequest(t, app, tokenFor(t, []string{entity.GroupVendedor}, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Sin grupos ni permisos → HTTP 403.
func TestRequirePermission_SinGruposNiPermisos(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, tokenFor(t, nil, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Formato de header incorrecto → HTTP 401.
func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.PermSalesManage, entity.GroupVendedor)
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username":    apphttp.GetUsername(c),
			"groups":      apphttp.GetGroups(c),
			"permissions": apphttp.GetPermissions(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, []string{entity.GroupBodega}, []string{apphttp.PermInventoryManage}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Username    string   `json:"username"`
		Groups      []string `json:"groups"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsername, body.Username)
	assert.Equal(t, []string{entity.GroupBodega}, body.Groups)
	assert.Equal(t, []string{apphttp.PermInventoryManage}, body.Permissions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername,
		[]string{entity.GroupVendedor}, []string{apphttp.PermSalesManage},
		testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, []string{entity.GroupVendedor}, claims.Groups)
	assert.Equal(t, []string{apphttp.PermSalesManage}, claims.Permissions)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, nil, nil, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, nil, nil, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe fallar")
}
