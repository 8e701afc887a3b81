package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/monitoring"
	gaussianProvider "github.com/GriffinCanCode/gaussvar/internal/providers/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := gaussianProvider.NewProvider(gaussianProvider.Options{
		Source: gaussian.NewSource(3),
	})
	require.NoError(t, err)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(provider))

	h := NewHandlers(registry, monitoring.NewMetrics(), nil, "test")
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRootAndHealth(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", decode(t, w)["version"])

	w = do(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "metrics")
	stats := body["service_registry"].(map[string]interface{})
	assert.Equal(t, 1.0, stats["total_services"])
}

func TestListServices(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
	}{
		{"all", "", http.StatusOK, 1},
		{"matching category", "?category=statistics", http.StatusOK, 1},
		{"other category", "?category=math", http.StatusOK, 0},
		{"unknown category", "?category=astrology", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, "GET", "/services"+tt.query, "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			services := decode(t, w)["services"].([]interface{})
			assert.Len(t, services, tt.wantCount)
		})
	}
}

func TestDiscoverServices(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "POST", "/services/discover", `{"intent":"propagate measurement uncertainty"}`)
	require.Equal(t, http.StatusOK, w.Code)
	services := decode(t, w)["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "gaussian", services[0].(map[string]interface{})["id"])

	w = do(router, "POST", "/services/discover", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router := setupRouter(t)

	t.Run("success", func(t *testing.T) {
		w := do(router, "POST", "/services/execute",
			`{"tool_id":"gaussian.divide","params":{"a":{"mean":100,"standard_deviation":10},"b":{"mean":50,"standard_deviation":2}}}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		result := body["data"].(map[string]interface{})["result"].(map[string]interface{})
		assert.Equal(t, 2.0, result["mean"])
	})

	t.Run("guard rejection is a tool failure", func(t *testing.T) {
		w := do(router, "POST", "/services/execute",
			`{"tool_id":"gaussian.divide","params":{"a":{"mean":1,"standard_deviation":1},"b":{"mean":0,"standard_deviation":1}}}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "zero_mean", body["data"].(map[string]interface{})["error_kind"])
	})

	t.Run("overflow is a tool failure with a body", func(t *testing.T) {
		for _, body := range []string{
			`{"tool_id":"gaussian.add","params":{"a":{"mean":1e308,"standard_deviation":1},"b":{"mean":1e308,"standard_deviation":1}}}`,
			`{"tool_id":"gaussian.divide","params":{"a":{"mean":1e200,"standard_deviation":0},"b":{"mean":1e-200,"standard_deviation":0}}}`,
		} {
			w := do(router, "POST", "/services/execute", body)
			require.Equal(t, http.StatusOK, w.Code)
			require.NotEmpty(t, w.Body.Bytes())
			decoded := decode(t, w)
			assert.Equal(t, false, decoded["success"])
			assert.Equal(t, "invalid_parameter", decoded["data"].(map[string]interface{})["error_kind"])
		}
	})

	t.Run("large exact ratio", func(t *testing.T) {
		w := do(router, "POST", "/services/execute",
			`{"tool_id":"gaussian.divide","params":{"a":{"mean":1e200,"standard_deviation":0},"b":{"mean":1,"standard_deviation":0}}}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		result := body["data"].(map[string]interface{})["result"].(map[string]interface{})
		assert.Equal(t, 1e200, result["mean"])
		assert.Equal(t, 0.0, result["standard_deviation"])
	})

	t.Run("missing tool id", func(t *testing.T) {
		w := do(router, "POST", "/services/execute", `{"params":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed tool id", func(t *testing.T) {
		w := do(router, "POST", "/services/execute", `{"tool_id":"add","params":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		w := do(router, "POST", "/services/execute", `{"tool_id":"poisson.add","params":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "service not found")
	})

	t.Run("large sample", func(t *testing.T) {
		w := do(router, "POST", "/services/execute",
			`{"tool_id":"gaussian.sample","params":{"variable":{"mean":0,"standard_deviation":1},"n":5000,"seed":9}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		body := decode(t, w)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["samples"], 5000)
		assert.Equal(t, 5000.0, data["n"])
	})
}
