// Loom orchestration server — provides the HTTP API, runs conversation
// turns against the reasoning engine and streams generated UI to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loomhq/loom/pkg/api"
	"github.com/loomhq/loom/pkg/cleanup"
	"github.com/loomhq/loom/pkg/config"
	"github.com/loomhq/loom/pkg/database"
	"github.com/loomhq/loom/pkg/erp"
	"github.com/loomhq/loom/pkg/events"
	"github.com/loomhq/loom/pkg/history"
	"github.com/loomhq/loom/pkg/merge"
	"github.com/loomhq/loom/pkg/orchestrator"
	"github.com/loomhq/loom/pkg/reason"
	"github.com/loomhq/loom/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// resolverConfig maps the configured merge policy onto the resolver's types.
// The loader has already validated the ambiguity default.
func resolverConfig(m *config.MergeSettings) merge.Config {
	cfg := merge.Config{ModifyThreshold: m.ModifyThreshold}
	switch m.AmbiguityDefault {
	case "add":
		cfg.AmbiguityDefault = merge.ActionAdd
	default:
		cfg.AmbiguityDefault = merge.ActionReplace
	}
	return cfg
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting Loom",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	snapshotService := services.NewSnapshotService(dbClient.Client, logger)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Reasoning engine and business-system targets
	reasoner, err := reason.NewGeminiClient(ctx, cfg.Reasoner)
	if err != nil {
		slog.Error("Failed to initialize reasoning client", "error", err)
		os.Exit(1)
	}
	slog.Info("Reasoning client initialized", "model", cfg.Reasoner.Model)

	erpClient := erp.NewClient(cfg.Targets, logger)
	catalog := erp.Catalog(cfg.Targets)
	slog.Info("Target catalog rendered", "targets", cfg.Targets.Len())

	// 6. History engine and merge resolver
	historyEngine := history.NewEngine(history.NewEntStore(snapshotService, sessionService), logger)
	historyEngine.SetBranchSoftLimit(cfg.Defaults.BranchSoftLimit)
	resolver := merge.NewResolver(resolverConfig(cfg.Merge))

	// 7. Turn executor
	executor := orchestrator.NewTurnExecutor(
		orchestrator.TurnExecutorConfig{
			TurnTimeout:        cfg.Defaults.TurnTimeout,
			MaxConcurrentTurns: cfg.Defaults.MaxConcurrentTurns,
			PodID:              podID,
		},
		historyEngine, reasoner, erpClient, resolver,
		sessionService, messageService, eventPublisher, catalog, logger,
	)

	// 8. Retention sweeper
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)

	// 9. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, sessionService, messageService, snapshotService, executor, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Loom started successfully", "pod_id", podID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	cleanupService.Stop()

	// Stop the executor with a bounded wait: in-flight turns are cancelled
	// and their streams close with an error event.
	executorCtx, executorCancel := context.WithTimeout(ctx, cfg.Defaults.TurnTimeout)
	defer executorCancel()

	done := make(chan struct{})
	go func() {
		executor.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Turn executor stopped gracefully")
	case <-executorCtx.Done():
		slog.Warn("Turn executor shutdown timeout exceeded")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
