// OpenManus web UI server.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/foundationagents/manus-webui/internal/agent"
	"github.com/foundationagents/manus-webui/internal/api"
	"github.com/foundationagents/manus-webui/internal/config"
	"github.com/foundationagents/manus-webui/internal/middleware"
	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/store"
	"github.com/foundationagents/manus-webui/internal/telemetry"
	"github.com/foundationagents/manus-webui/internal/translog"
	"github.com/foundationagents/manus-webui/internal/ws"
	"github.com/foundationagents/manus-webui/web"
)

func main() {
	logger := telemetry.InitLogger()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags overlay the environment, preserving the original CLI surface.
	flag.StringVar(&cfg.Host, "host", cfg.Host, "interface to bind")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	flag.BoolVar(&cfg.Share, "share", cfg.Share, "listen on all interfaces and print reachable URLs")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "UI language (ja or en)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting web UI", "addr", cfg.Addr(), "language", cfg.Language, "agent_addr", cfg.AgentAddr)

	telemetryCleanup, err := telemetry.InitTelemetry(context.Background(), cfg.LogDir)
	if err != nil {
		slog.Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer telemetryCleanup()

	// Initialize dependencies. Without the archive, recent transcripts are
	// served from memory only.
	var repo store.Repository
	if cfg.DBEnabled {
		sqlStore, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if closeErr := sqlStore.Close(); closeErr != nil {
				slog.Error("Failed to close repository", "error", closeErr)
			}
		}()

		if err := sqlStore.Ping(context.Background()); err != nil {
			slog.Error("Database health check failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database connected", "path", cfg.DBPath)
		repo = sqlStore
	} else {
		slog.Info("Transcript archive disabled")
	}

	tlog, err := translog.New(translog.Config{
		Enabled:       cfg.TranscriptLog.Enabled,
		Dir:           cfg.TranscriptLog.Dir,
		GlobalEnabled: cfg.TranscriptLog.GlobalEnabled,
		GlobalPath:    cfg.TranscriptLog.GlobalPath,
		QueueSize:     cfg.TranscriptLog.QueueSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize transcript logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := tlog.Close(); closeErr != nil {
			slog.Error("Failed to close transcript logger", "error", closeErr)
		}
	}()

	recorder := translog.NewRecorder(tlog, repo, logger)
	settings := config.NewSettingsSource(cfg.ConfigPath, logger)

	// The agent is dialed lazily on the first submission, so a dead agent
	// endpoint does not keep the UI from starting.
	agentCfg := agent.DefaultGrpcClientConfig()
	agentCfg.Address = cfg.AgentAddr
	agentCfg.ConnectTimeout = cfg.ConnectTimeout
	factory := agent.GrpcFactory(agentCfg, logger)

	controller, err := session.NewController(session.Config{Factory: factory, Language: cfg.Language}, logger)
	if err != nil {
		slog.Error("Failed to initialize session controller", "error", err)
		os.Exit(1)
	}

	// Initialize handlers.
	registry := ws.NewRegistry()
	apiHandler := api.NewHandler(controller, settings, repo, recorder, registry, logger)
	wsHandler := ws.NewHandler(controller, registry, recorder, cfg.Origins(), logger)

	// Setup router.
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.Origins()))

	apiHandler.RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	// Serve the embedded chat page (catch-all).
	r.Handle("/*", web.Handler())

	// Note: SSE and WebSocket connections require long timeouts (no WriteTimeout).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,                 // 0 = no timeout for streaming support
		IdleTimeout:  120 * time.Second, // 2 minutes for idle connections
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if cfg.Share {
			logShareURLs(cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	registry.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	// Release agent resources after in-flight requests have drained.
	cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelCleanup()
	if err := controller.Cleanup(cleanupCtx); err != nil {
		slog.Error("Agent cleanup failed", "error", err)
	}

	slog.Info("Server stopped successfully")
}

// logShareURLs prints the URLs the UI is reachable at when bound to all
// interfaces, so an operator can hand one to another machine on the LAN.
func logShareURLs(port int) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		slog.Warn("Could not enumerate interfaces", "error", err)
		return
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		ip := ipNet.IP.To4()
		if ip == nil {
			continue
		}
		slog.Info("UI reachable", "url", "http://"+net.JoinHostPort(ip.String(), strconv.Itoa(port)))
	}
}
