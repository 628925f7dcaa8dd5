package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fxcip/internal/api/handlers"
	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/cip"
	"github.com/wonny/fxcip/internal/holidays"
	"github.com/wonny/fxcip/internal/tenor"
	"github.com/wonny/fxcip/pkg/config"
	"github.com/wonny/fxcip/pkg/logger"
)

func testRouter() http.Handler {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	log := logger.New(cfg)
	catalog := tenor.Default()
	pipeline := cip.NewPipeline(catalog, calendar.New(holidays.Builtin()), log)
	calcHandler := handlers.NewCalcHandler(pipeline, catalog, log)
	return NewRouter(calcHandler, log)
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRouter_Calculate(t *testing.T) {
	body := `{
		"tenor": "1M",
		"observations": [
			{"trade_date": "2026-01-30", "base_rate_pct": 3.66877, "spot_rate": 1.2669, "forward_points_pips": -24.68}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2026-03-03")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := testRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/calculate"},
		{http.MethodPost, "/api/v1/tenors"},
		{http.MethodDelete, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Tenors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenors", nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1M")
}
