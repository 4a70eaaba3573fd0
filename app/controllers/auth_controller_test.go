package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/internal/pkg/middleware"
)

func newAuthTestApp(t *testing.T, adminRepo *stubAdminRepo) *fiber.App {
	t.Helper()

	app := fiber.New()
	ac := NewAuthController(adminRepo)
	app.Post("/api/auth/login", ac.HandleLogin)
	app.Get("/api/auth/me", middleware.RequireAdminToken(adminRepo), ac.HandleProfile)
	return app
}

func seedTestAdmin(t *testing.T, repo *stubAdminRepo) *models.Admin {
	t.Helper()

	admin, err := models.CreateAdmin("Admin", "admin@x.com", "admin123", models.ROLE_ADMIN)
	require.NoError(t, err)
	require.NoError(t, repo.Create(admin))
	return admin
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	seedTestAdmin(t, adminRepo)
	app := newAuthTestApp(t, adminRepo)

	resp := postLogin(t, app, `{"email":"Admin@X.com","password":"admin123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	assert.Len(t, strings.Split(token, "."), 3)

	admin := data["admin"].(map[string]interface{})
	assert.Equal(t, "admin@x.com", admin["email"])
	assert.Equal(t, models.ROLE_ADMIN, admin["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	seedTestAdmin(t, adminRepo)
	app := newAuthTestApp(t, adminRepo)

	resp := postLogin(t, app, `{"email":"admin@x.com","password":"wrong"}`)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "data")
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	seedTestAdmin(t, adminRepo)
	app := newAuthTestApp(t, adminRepo)

	resp := postLogin(t, app, `{"email":"nobody@x.com","password":"admin123"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	admin := seedTestAdmin(t, adminRepo)
	admin.IsActive = false
	app := newAuthTestApp(t, adminRepo)

	resp := postLogin(t, app, `{"email":"admin@x.com","password":"admin123"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	seedTestAdmin(t, adminRepo)
	app := newAuthTestApp(t, adminRepo)

	req, err := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := newStubAdminRepo()
	seedTestAdmin(t, adminRepo)
	app := newAuthTestApp(t, adminRepo)

	resp := postLogin(t, app, `{"email":"admin@x.com","password":"admin123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["data"].(map[string]interface{})["token"].(string)

	req, err := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	profileResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, profileResp.StatusCode)

	body := decodeBody(t, profileResp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "admin@x.com", data["email"])
}
