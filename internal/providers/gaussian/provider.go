package gaussian

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// ServiceID is the registry key and tool ID prefix
const ServiceID = "gaussian"

// Options configures a Provider. Zero values fall back to defaults.
type Options struct {
	Thresholds    gaussian.Thresholds
	SampleSize    int
	MaxSampleSize int
	// Source backs unseeded draws. It is wrapped in a LockedSource.
	Source  rand.Source
	Logger  *zap.Logger
	Metrics *monitoring.Metrics
	Tracer  *tracing.Tracer
}

// DefaultOptions returns options with default thresholds and sample sizes
func DefaultOptions() Options {
	return Options{
		Thresholds:    gaussian.DefaultThresholds(),
		SampleSize:    gaussian.DefaultSampleSize,
		MaxSampleSize: 1_000_000,
	}
}

// Provider implements gaussian uncertainty propagation tools
type Provider struct {
	arithmetic   *ArithmeticOps
	distribution *DistributionOps
	sampling     *SamplingOps
	values       *ValueOps

	logger  *zap.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
}

// NewProvider creates a gaussian provider
func NewProvider(opts Options) (*Provider, error) {
	defaults := DefaultOptions()
	if opts.Thresholds == (gaussian.Thresholds{}) {
		opts.Thresholds = defaults.Thresholds
	}
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("thresholds: %w", err)
	}
	if opts.MaxSampleSize <= 0 {
		opts.MaxSampleSize = defaults.MaxSampleSize
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = defaults.SampleSize
	}
	if opts.SampleSize > opts.MaxSampleSize {
		return nil, fmt.Errorf("sample size %d exceeds maximum %d", opts.SampleSize, opts.MaxSampleSize)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var source *gaussian.LockedSource
	switch src := opts.Source.(type) {
	case nil:
		source = gaussian.NewLockedSource(gaussian.NewSource(uint64(time.Now().UnixNano())))
	case *gaussian.LockedSource:
		source = src
	default:
		source = gaussian.NewLockedSource(src)
	}

	ops := &GaussianOps{
		thresholds: opts.Thresholds,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}

	return &Provider{
		arithmetic:   &ArithmeticOps{GaussianOps: ops},
		distribution: &DistributionOps{GaussianOps: ops},
		sampling: &SamplingOps{
			GaussianOps:   ops,
			source:        source,
			sampleSize:    opts.SampleSize,
			maxSampleSize: opts.MaxSampleSize,
		},
		values:  &ValueOps{GaussianOps: ops},
		logger:  opts.Logger,
		metrics: opts.Metrics,
		tracer:  opts.Tracer,
	}, nil
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.values.GetTools()...)
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.distribution.GetTools()...)
	tools = append(tools, p.sampling.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Gaussian Service",
		Description: "Propagates measurement uncertainty through arithmetic on normally distributed values",
		Category:    types.CategoryStatistics,
		Capabilities: []string{
			"uncertainty",
			"arithmetic",
			"distribution",
			"sampling",
			"fitting",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "variable",
				Fields: map[string]string{
					"mean":               "number",
					"standard_deviation": "number (>= 0)",
				},
			},
		},
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	timer := monitoring.NewTimer(p.metrics, ServiceID, toolID)

	var span *tracing.Span
	if p.tracer != nil {
		span, ctx = p.tracer.StartSpan(ctx, toolID)
		span.SetTag("tool", toolID)
	}

	result, err := p.route(ctx, toolID, params, appCtx)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result != nil && !result.Success:
		status = "failure"
	}
	duration := timer.Stop(status)

	if span != nil {
		span.SetTag("status", status)
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
		p.tracer.Submit(span)
	}

	if err != nil {
		p.logger.Error("tool execution failed",
			zap.String("trace_id", tracing.GetTraceID(ctx).String()),
			zap.String("tool", toolID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	}
	return result, err
}

func (p *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Value operations
	case "gaussian.new":
		return p.values.New(ctx, params, appCtx)
	case "gaussian.format":
		return p.values.Format(ctx, params, appCtx)

	// Arithmetic operations
	case "gaussian.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "gaussian.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "gaussian.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "gaussian.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)

	// Distribution operations
	case "gaussian.pdf":
		return p.distribution.PDF(ctx, params, appCtx)
	case "gaussian.cdf":
		return p.distribution.CDF(ctx, params, appCtx)
	case "gaussian.quantile":
		return p.distribution.Quantile(ctx, params, appCtx)

	// Sampling operations
	case "gaussian.sample":
		return p.sampling.Sample(ctx, params, appCtx)
	case "gaussian.fit":
		return p.sampling.Fit(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
