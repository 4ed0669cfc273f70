// Jervis core server — runs the inference router, the extraction queue
// workers, the orchestration engine, and the HTTP API.
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
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/jervis-ai/jervis-core/pkg/agentpool"
	"github.com/jervis-ai/jervis-core/pkg/api"
	"github.com/jervis-ai/jervis-core/pkg/cleanup"
	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/coordinator"
	"github.com/jervis-ai/jervis-core/pkg/database"
	"github.com/jervis-ai/jervis-core/pkg/extraction"
	"github.com/jervis-ai/jervis-core/pkg/kb"
	"github.com/jervis-ai/jervis-core/pkg/kubejob"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/memory"
	"github.com/jervis-ai/jervis-core/pkg/orchestration"
	"github.com/jervis-ai/jervis-core/pkg/router"
	"github.com/jervis-ai/jervis-core/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveInstanceID determines the instance identifier for worker naming.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolveInstanceID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// kubeClient builds a clientset from in-cluster config, falling back to
// KUBECONFIG for local development. Returns nil when neither is available;
// coding-agent dispatch is then disabled.
func kubeClient() kubernetes.Interface {
	restCfg, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := getEnv("KUBECONFIG", filepath.Join(os.Getenv("HOME"), ".kube", "config"))
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			slog.Warn("No Kubernetes config available, agent dispatch disabled", "error", err)
			return nil
		}
	}
	clientset, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		slog.Warn("Failed to build Kubernetes client, agent dispatch disabled", "error", err)
		return nil
	}
	return clientset
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8200")
	instanceID := resolveInstanceID()

	slog.Info("Starting Jervis core",
		"version", version.Full(),
		"http_port", httpPort,
		"instance_id", instanceID,
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

	// 3. Shared clients and the process-global quick memory
	memory.Initialize(cfg.Memory)
	llmClient := llm.NewClient(cfg.LLM)
	kbClient := kb.NewClient(cfg.KB)
	coordClient := coordinator.NewClient(cfg.Coordinator)
	tokens := llm.NewTokenCounter()

	// 4. Inference router
	rt := router.New(cfg.Router)
	rt.Start(ctx)
	defer rt.Stop()
	slog.Info("Inference router started", "gpu_backends", len(cfg.Router.GPUBackends))

	// 5. Extraction queue workers (stale-task recovery runs inside Start)
	store := extraction.NewStore(dbClient.Client)
	extractor := extraction.NewKBExtractor(kbClient)
	workerPool := extraction.NewWorkerPool(instanceID, store, cfg.Extraction, extractor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start extraction workers", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, dbClient.Client)
	retention.Start(ctx)
	defer retention.Stop()

	// 6. Orchestration engine
	history := orchestration.NewHistory(dbClient.Client)
	checkpoints := orchestration.NewCheckpointStore(dbClient.Client)
	assembler := orchestration.NewAssembler(history, tokens, cfg.Orchestration)
	compressor := orchestration.NewCompressor(history, llmClient, cfg.Orchestration)

	memFactory := func(clientID, projectID string) orchestration.MemorySession {
		return memory.NewAgent(memory.Global(), kbClient, llmClient, cfg.Memory, clientID, projectID)
	}

	tools := orchestration.NewRegistry()
	loop := orchestration.NewLoop(llmClient, tools, tokens, cfg.Orchestration)

	pool := agentpool.New(cfg.AgentPool)
	var dispatcher orchestration.AgentDispatcher
	if clientset := kubeClient(); clientset != nil {
		dispatcher = kubejob.NewDispatcher(cfg.Kubernetes, clientset,
			getEnv("WORKSPACE_ROOT", cfg.Kubernetes.WorkspaceMountPath))
	}

	chatHandler := orchestration.NewChatHandler(loop, assembler, history, compressor,
		checkpoints, coordClient, rt, llmClient, memFactory, cfg.Orchestration)
	engine := orchestration.NewBackgroundEngine(loop, assembler, history, checkpoints,
		coordClient, llmClient, memFactory, pool, dispatcher, cfg.Orchestration)

	// 7. HTTP server
	server := api.NewServer(dbClient, rt, chatHandler, engine, checkpoints, pool, workerPool)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Jervis core started",
		"instance_id", instanceID,
		"extraction_workers", cfg.Extraction.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: drain workers, then the HTTP server
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Extraction workers stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker shutdown timeout exceeded, in-flight tasks will be stale-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
