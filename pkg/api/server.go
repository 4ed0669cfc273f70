// Package api exposes the orchestration HTTP surface: streaming chat,
// background task submission, approval/resume, and status, alongside the
// inference router's Ollama-compatible routes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jervis-ai/jervis-core/pkg/agentpool"
	"github.com/jervis-ai/jervis-core/pkg/database"
	"github.com/jervis-ai/jervis-core/pkg/extraction"
	"github.com/jervis-ai/jervis-core/pkg/orchestration"
	"github.com/jervis-ai/jervis-core/pkg/router"
	"github.com/jervis-ai/jervis-core/pkg/version"
)

// Server wires the HTTP handlers over the engine's components.
type Server struct {
	db          *database.Client
	router      *router.Router
	chat        *orchestration.ChatHandler
	engine      *orchestration.BackgroundEngine
	checkpoints *orchestration.CheckpointStore
	pool        *agentpool.Pool
	extraction  *extraction.WorkerPool
}

// NewServer creates the API server.
func NewServer(db *database.Client, rt *router.Router, chat *orchestration.ChatHandler,
	engine *orchestration.BackgroundEngine, checkpoints *orchestration.CheckpointStore,
	pool *agentpool.Pool, workers *extraction.WorkerPool) *Server {
	return &Server{
		db:          db,
		router:      rt,
		chat:        chat,
		engine:      engine,
		checkpoints: checkpoints,
		pool:        pool,
		extraction:  workers,
	}
}

// Engine builds the gin engine with all routes registered.
func (s *Server) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())

	if s.router != nil {
		s.router.RegisterRoutes(engine)
	}

	engine.GET("/health", s.handleHealth)
	engine.POST("/chat", s.handleChat)
	engine.POST("/orchestrate/stream", s.handleOrchestrate)
	engine.POST("/approve/:thread_id", s.handleApprove)
	engine.GET("/status/:thread_id", s.handleThreadStatus)
	engine.GET("/system/status", s.handleSystemStatus)

	return engine
}

// handleHealth reports process and database health.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	payload := gin.H{"status": "healthy", "version": version.Full()}
	code := http.StatusOK
	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		payload["database"] = dbHealth
		if err != nil {
			payload["status"] = "unhealthy"
			payload["error"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, payload)
}

// handleSystemStatus exposes queue and pool occupancy for dashboards.
func (s *Server) handleSystemStatus(c *gin.Context) {
	payload := gin.H{}
	if s.pool != nil {
		payload["agent_pool"] = s.pool.Status()
		payload["active_jobs"] = s.pool.ActiveJobs()
		payload["stuck_jobs"] = s.pool.StuckJobs(time.Now())
	}
	if s.extraction != nil {
		health, err := s.extraction.Health(c.Request.Context())
		if err == nil {
			payload["extraction"] = health
		} else {
			payload["extraction_error"] = err.Error()
		}
	}
	c.JSON(http.StatusOK, payload)
}
