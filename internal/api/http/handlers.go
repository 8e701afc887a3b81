package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/gaussvar/internal/service"
	"github.com/GriffinCanCode/gaussvar/internal/shared/id"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
	"github.com/GriffinCanCode/gaussvar/internal/shared/utils"
)

// Results carrying more samples than this are encoded with sonic
const largeSampleThreshold = 1000

const defaultDiscoverLimit = 5

// Handlers contains HTTP request handlers
type Handlers struct {
	registry  *service.Registry
	metrics   *monitoring.Metrics
	logger    *zap.Logger
	version   string
	startedAt time.Time
}

// NewHandlers creates a new handlers instance
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *zap.Logger, version string) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry:  registry,
		metrics:   metrics,
		logger:    logger,
		version:   version,
		startedAt: time.Now(),
	}
}

// Root handles the root endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"service": "gaussvar",
		"version": h.version,
	})
}

// Health handles health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"uptime_seconds":   time.Since(h.startedAt).Seconds(),
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + categoryStr})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services matching an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := defaultDiscoverLimit
	if req.Limit > 0 {
		limit = req.Limit
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.Discover(req.Intent, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.MaxJSONSize)

	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateJSONDepth(req.Params, utils.MaxParamsDepth); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	requestID := id.NewRequestID().String()
	clientIP := c.ClientIP()
	appCtx := &types.Context{RequestID: &requestID, ClientIP: &clientIP}

	result, err := h.registry.Execute(ctx, req.ToolID, req.Params, appCtx)
	if err != nil {
		h.logger.Warn("service execution failed",
			zap.String("trace_id", tracing.GetTraceID(ctx).String()),
			zap.String("request_id", requestID),
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		status := http.StatusInternalServerError
		if result != nil {
			// Registry routing errors carry a result describing the bad request
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	marshal := json.Marshal
	if sampleCount(result) > largeSampleThreshold {
		marshal = sonic.Marshal
	}
	data, err := marshal(result)
	if err != nil {
		h.logger.Error("Failed to encode result", zap.String("tool_id", req.ToolID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode result: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func sampleCount(result *types.Result) int {
	if result == nil || result.Data == nil {
		return 0
	}
	samples, _ := result.Data["samples"].([]float64)
	return len(samples)
}
