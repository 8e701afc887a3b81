package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Gaussian.Seed = 1

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close(context.Background()) })
	return srv
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"root", "GET", "/", "", http.StatusOK, `"gaussvar"`},
		{"health", "GET", "/health", "", http.StatusOK, `"healthy"`},
		{"list services", "GET", "/services", "", http.StatusOK, `"gaussian.add"`},
		{"execute", "POST", "/services/execute",
			`{"tool_id":"gaussian.add","params":{"a":{"mean":1,"standard_deviation":3},"b":{"mean":2,"standard_deviation":4}}}`,
			http.StatusOK, `"standard_deviation":5`},
		{"unknown route", "GET", "/nope", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
		})
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"tool_id":"gaussian.multiply","params":{"a":{"mean":10,"standard_deviation":5},"b":{"mean":10,"standard_deviation":5}}}`
	req := httptest.NewRequest("POST", "/services/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, false, result["success"])

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gaussvar_guard_rejections_total{kind="non_normal_result",operation="multiply"} 1`)
	assert.Contains(t, w.Body.String(), "gaussvar_http_requests_total")
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Gaussian.RatioLambda = 0

	_, err := NewServer(cfg)
	assert.Error(t, err)
}
