package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aurafolio/internal/config"
	"aurafolio/internal/database"
	"aurafolio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8090",
		JWTSecret:     "test-secret-test-secret-test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "test-password",
		Env:           "test",
	}
}

func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "migrate sqlite")

	srv, err := NewServerWithDeps(testConfig(), db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return srv, app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "admin@example.com",
		Password: "test-password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	login := decodeBody[LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestHealthCheck(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "not-admin@example.com",
		Password: "test-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAdminRoutesRequireToken(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/analytics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/admin/analytics", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestProjectCRUDOverHTTP(t *testing.T) {
	_, app := setupTestServer(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"title":    "HTTP Project",
		"category": "Web Development",
		"liveUrl":  "https://example.com",
		"tags":     []string{"Go", "Fiber"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.Project](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "https://example.com", created.LiveURL)

	resp = doJSON(t, app, http.MethodPut, "/api/admin/projects/"+created.ID, token, map[string]any{
		"liveUrl": "https://example.com/v2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Project](t, resp)
	assert.Equal(t, "https://example.com/v2", updated.LiveURL)
	assert.Equal(t, "HTTP Project", updated.Title)

	resp = doJSON(t, app, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decodeBody[[]models.Project](t, resp)
	require.Len(t, listed, 1)

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/projects", "", nil)
	listed = decodeBody[[]models.Project](t, resp)
	assert.Empty(t, listed)
}

func TestUpdateMissingProjectIs404(t *testing.T) {
	_, app := setupTestServer(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/admin/projects/missing", token, map[string]any{
		"title": "x",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestContactSubmission(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", "", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	msg := decodeBody[models.Message](t, resp)
	assert.Equal(t, "contact-form", msg.Source)

	resp = doJSON(t, app, http.MethodPost, "/api/contact", "", map[string]any{
		"name": "No Email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestNewsletterConflict(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/newsletter", "", NewsletterRequest{
		Email: "dup@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/newsletter", "", NewsletterRequest{
		Email: "dup@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_SUBSCRIBED", body.Code)
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	settings := decodeBody[models.Settings](t, resp)
	assert.Equal(t, "main", settings.ID)
	assert.Equal(t, "https://linkedin.com/in/aurangzebsunny", settings.Linkedin)
}

func TestAdminUpdateSettings(t *testing.T) {
	_, app := setupTestServer(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/admin/settings", token, map[string]any{
		"resumeUrl": "https://example.com/cv.pdf",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	settings := decodeBody[models.Settings](t, resp)
	assert.Equal(t, "https://example.com/cv.pdf", settings.ResumeURL)
}

func TestAdminAnalytics(t *testing.T) {
	srv, app := setupTestServer(t)
	token := adminToken(t, app)

	_, err := srv.store.AddProject(context.Background(), models.Project{Title: "P"})
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/analytics", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[models.Analytics](t, resp)
	assert.Equal(t, 1, got.TotalProjects)
}
