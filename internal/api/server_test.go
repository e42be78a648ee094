package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	integratormocks "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/mocks"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/api/handler"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, authenticating.Authenticator) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"https://lookerstudio.google.com"}
	cfg.Properties.KeyName = "dscc.key"
	cfg.Auth.Secret = "segredo-teste"
	cfg.Auth.TokenTTL = time.Hour

	store := repository.NewMemoryPropertyStore()
	integrator := integratormocks.NewMockIntegrator(gomock.NewController(t))

	auth := authenticating.NewService(store, integrator, cfg)
	reporter := reporting.NewService(store, integrator, cfg, time.UTC)

	return NewHandler(cfg, auth, reporter, handler.CronJobServices{}), auth
}

func TestNewHandler_RotasPublicas(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewHandler_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/connector/data", nil)
	req.Header.Set("Origin", "https://lookerstudio.google.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://lookerstudio.google.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_Connector(t *testing.T) {
	h, auth := newTestHandler(t)

	token, err := auth.IssueToken("u1", []string{domain.ScopeConnector}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/connector/schema", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, rec.Body.String(), `"opreatingSystem"`)
}

func TestNewHandler_RotaInexistente(t *testing.T) {
	h, auth := newTestHandler(t)

	token, err := auth.IssueToken("u1", []string{domain.ScopeConnector}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/connector/desconhecida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"RES_001"`)
}
