package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scheme-navigator/internal/api/handlers"
	"scheme-navigator/internal/models"
	"scheme-navigator/internal/service"
	"scheme-navigator/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type emptyCatalog struct{}

func (emptyCatalog) Aggregate(context.Context) []models.SchemeEntity {
	return []models.SchemeEntity{}
}

func (emptyCatalog) Category(context.Context, string) ([]models.SchemeEntity, error) {
	return []models.SchemeEntity{}, nil
}

func (emptyCatalog) NormalizedAll(context.Context) []models.SchemeView {
	return []models.SchemeView{}
}

func (emptyCatalog) NormalizedCategory(context.Context, string) ([]models.SchemeView, error) {
	return []models.SchemeView{}, nil
}

type stubImporter struct {
	slugs []string
}

func (s *stubImporter) Import(_ context.Context, _ string, slugs []string) ([]service.CategoryImport, error) {
	s.slugs = slugs
	return []service.CategoryImport{{Category: "women", Documents: 1, Schemes: 3}}, nil
}

func newTestRouter(t *testing.T) (*fiber.App, *auth.JWTManager, *stubImporter) {
	t.Helper()
	log := zaptest.NewLogger(t)

	jwtManager := auth.NewJWTManager("test-secret", "scheme-navigator", time.Hour)
	importer := &stubImporter{}
	catalog := emptyCatalog{}

	h := Handlers{
		Schemes:         handlers.NewSchemeHandler(catalog, log),
		Chat:            handlers.NewChatHandler(service.NewChatService(catalog, nil, log), log),
		Recommendations: handlers.NewRecommendationHandler(service.NewRecommendationService(catalog, nil, log), log),
		Admin:           handlers.NewAdminHandler(importer, "./dataset", log),
	}

	app := SetupRouter(h, jwtManager, Options{CORSOrigins: "*"}, log)
	return app, jwtManager, importer
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouter_Root(t *testing.T) {
	app, _, _ := newTestRouter(t)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Welcome to the Government Schemes API", body)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_Health(t *testing.T) {
	app, _, _ := newTestRouter(t)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok"}`, body)
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	app, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/all", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-42", resp.Header.Get(fiber.HeaderXRequestID))
	assert.JSONEq(t, `[]`, body)
}

func TestRouter_EmptyCorpusRecommendation(t *testing.T) {
	app, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)
}

func TestRouter_ChatWithoutMatches(t *testing.T) {
	app, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"message": "pm kisan"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No matching scheme found in the dataset.")
}

func TestRouter_AdminReload(t *testing.T) {
	app, jwtManager, importer := newTestRouter(t)

	adminToken, err := jwtManager.GenerateToken("operator", "admin")
	require.NoError(t, err)
	viewerToken, err := jwtManager.GenerateToken("someone", "viewer")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewerToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", strings.NewReader(`{"categories": ["women"]}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, body := send(t, app, req)
			assert.Equal(t, tt.status, resp.StatusCode, body)
		})
	}

	assert.Equal(t, []string{"women"}, importer.slugs)
}
