package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/foundationagents/manus-webui/internal/proto/manus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
	errEmptyAddress             = errors.New("agent address is empty")
	errCleanupRejected          = errors.New("agent cleanup returned ok=false")
)

// GrpcClient is an Agent backed by the Manus gRPC service (the Python
// process that owns planning and tool use).
type GrpcClient struct {
	conn      *grpc.ClientConn
	client    manus.ManusAgentClient
	addr      string
	logger    *slog.Logger
	tracer    trace.Tracer
	meter     metric.Meter
	closeOnce sync.Once
}

var _ Agent = (*GrpcClient)(nil)

// GrpcClientConfig holds configuration for the gRPC client.
type GrpcClientConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultGrpcClientConfig returns default configuration.
func DefaultGrpcClientConfig() GrpcClientConfig {
	return GrpcClientConfig{
		Address:          getEnv("MANUS_AGENT_ADDR", "localhost:50051"),
		ConnectTimeout:   5 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewGrpcClient dials the Manus agent service and verifies it is ready.
// Construction is the slow part of first use: a bad endpoint fails here,
// inside ConnectTimeout, instead of hanging the first Run call.
func NewGrpcClient(ctx context.Context, cfg GrpcClientConfig, logger *slog.Logger) (*GrpcClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Address == "" {
		return nil, errEmptyAddress
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Manus agent at %s: %w", cfg.Address, err)
	}

	// Force a connection attempt now so we fail fast on bad agent endpoints.
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("manus agent at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("Connected to Manus agent service", "address", cfg.Address)

	return &GrpcClient{
		conn:   conn,
		client: manus.NewManusAgentClient(conn),
		addr:   cfg.Address,
		logger: logger,
		tracer: otel.Tracer("manus-webui/agent"),
		meter:  otel.Meter("manus-webui/agent"),
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Run executes one request to completion. No client-side deadline is
// applied; Manus runs can take minutes and the session is single-flight
// until the call returns. Cancellation comes from ctx only.
func (c *GrpcClient) Run(ctx context.Context, req Request) (string, error) {
	ctx, span := c.tracer.Start(ctx, "manus_run", trace.WithAttributes(
		attribute.String("run_id", req.RunID),
		attribute.String("language", req.Language),
		attribute.Int("prompt_length", len(req.Prompt)),
	))
	defer span.End()

	start := time.Now()
	resp, err := c.client.Run(ctx, &manus.RunRequest{
		Prompt:   req.Prompt,
		RunId:    req.RunID,
		Language: req.Language,
	})

	duration := time.Since(start)
	if histogram, herr := c.meter.Float64Histogram(
		"agent.run.duration",
		metric.WithDescription("Agent run duration in milliseconds"),
	); herr == nil {
		histogram.Record(ctx, float64(duration.Milliseconds()))
	}

	if err != nil {
		span.RecordError(err)
		c.logger.Error("Agent run failed", "run_id", req.RunID, "duration", duration, "error", err)
		return "", fmt.Errorf("agent run failed: %w", err)
	}

	c.logger.Info("Agent run completed", "run_id", req.RunID, "duration", duration, "result_length", len(resp.GetResult()))
	return resp.GetResult(), nil
}

// Health checks if the Manus agent service is healthy.
func (c *GrpcClient) Health(ctx context.Context) (string, error) {
	resp, err := c.client.Health(ctx, &manus.HealthRequest{})
	if err != nil {
		return "", fmt.Errorf("health check failed: %w", err)
	}
	return resp.GetStatus(), nil
}

// Cleanup asks the service to release agent resources (browser contexts,
// sandboxes, tool state), then closes the connection. Repeat calls are
// no-ops.
func (c *GrpcClient) Cleanup(ctx context.Context) error {
	var cleanupErr error
	c.closeOnce.Do(func() {
		ctx, span := c.tracer.Start(ctx, "manus_cleanup")
		defer span.End()

		resp, err := c.client.Cleanup(ctx, &manus.CleanupRequest{})
		switch {
		case err != nil:
			cleanupErr = fmt.Errorf("agent cleanup failed: %w", err)
		case !resp.GetOk():
			// Python returns ok=false when teardown partially failed.
			c.logger.Warn("Agent cleanup rejected by service", "address", c.addr)
			cleanupErr = errCleanupRejected
		}

		if closeErr := c.conn.Close(); closeErr != nil {
			c.logger.Warn("failed to close gRPC connection", "error", closeErr)
		}
	})
	return cleanupErr
}

// GrpcFactory binds cfg and logger into a Factory. The session controller
// calls it lazily on the first submission, so a dead agent endpoint at
// startup does not prevent the UI from serving.
func GrpcFactory(cfg GrpcClientConfig, logger *slog.Logger) Factory {
	return func(ctx context.Context) (Agent, error) {
		return NewGrpcClient(ctx, cfg, logger)
	}
}

// Helper function.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
