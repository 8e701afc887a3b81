package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/gaussvar/internal/api/http"
	"github.com/GriffinCanCode/gaussvar/internal/api/middleware"
	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/config"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/logging"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/tracing"
	gaussianProvider "github.com/GriffinCanCode/gaussvar/internal/providers/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/service"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	tracer   *tracing.Tracer
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewFromLevel(cfg.Logging.Level, cfg.Logging.Development)
	logger.Info("Initializing gaussvar server",
		zap.String("port", cfg.Server.Port),
		zap.Float64("product_cv_limit", cfg.Gaussian.ProductCVLimit),
		zap.Float64("ratio_lambda", cfg.Gaussian.RatioLambda),
		zap.Float64("ratio_gamma_factor", cfg.Gaussian.RatioGammaFactor),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()
	tracer := tracing.New("gaussvar", logger.Logger)

	serviceRegistry := service.NewRegistry()
	if err := registerProviders(serviceRegistry, cfg, logger, metrics, tracer); err != nil {
		tracer.Close()
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := api.NewHandlers(serviceRegistry, metrics, logger.Logger, Version)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry: serviceRegistry,
		tracer:   tracer,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.tracer.Close()
	// Sync logger before exit
	_ = s.logger.Sync()

	return err
}

func registerProviders(registry *service.Registry, cfg *config.Config, logger *logging.Logger, metrics *monitoring.Metrics, tracer *tracing.Tracer) error {
	// A zero seed leaves the provider to seed from the clock
	var source rand.Source
	if cfg.Gaussian.Seed != 0 {
		source = gaussian.NewSource(cfg.Gaussian.Seed)
	}

	provider, err := gaussianProvider.NewProvider(gaussianProvider.Options{
		Thresholds:    cfg.Gaussian.Thresholds(),
		SampleSize:    cfg.Gaussian.SampleSize,
		MaxSampleSize: cfg.Gaussian.MaxSampleSize,
		Source:        source,
		Logger:        logger.Named("gaussian"),
		Metrics:       metrics,
		Tracer:        tracer,
	})
	if err != nil {
		return fmt.Errorf("failed to create gaussian provider: %w", err)
	}
	if err := registry.Register(provider); err != nil {
		return fmt.Errorf("failed to register gaussian provider: %w", err)
	}

	logger.Info("Registered service provider", zap.String("service", gaussianProvider.ServiceID))
	return nil
}
