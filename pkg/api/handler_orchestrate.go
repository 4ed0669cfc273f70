package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/pkg/models"
	"github.com/jervis-ai/jervis-core/pkg/orchestration"
)

// handleOrchestrate accepts a background task and returns 202 with the
// thread ID; the run proceeds detached from the request.
func (s *Server) handleOrchestrate(c *gin.Context) {
	var req models.OrchestrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Task.ID == "" || req.Task.ClientID == "" || req.Task.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task.id, task.client_id and task.query are required"})
		return
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = uuid.New().String()
	}

	go func() {
		if _, err := s.engine.Execute(context.Background(), req.Task, threadID); err != nil {
			slog.Error("Background orchestration failed",
				"task_id", req.Task.ID, "thread_id", threadID, "error", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"thread_id": threadID,
		"task_id":   req.Task.ID,
		"status":    "accepted",
	})
}

// handleApprove resumes a paused thread with the user's answer or approval
// verdict. Body: {approved: bool, reason?: string, value?: string}.
func (s *Server) handleApprove(c *gin.Context) {
	threadID := c.Param("thread_id")
	var req models.ResumeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state, err := s.engine.Resume(c.Request.Context(), threadID, req)
	if err != nil {
		if errors.Is(err, orchestration.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no paused run for thread"})
			return
		}
		slog.Error("Resume failed", "thread_id", threadID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resume failed"})
		return
	}

	payload := gin.H{"thread_id": threadID, "final_result": state.FinalResult}
	if state.Error != "" {
		payload["error"] = state.Error
	}
	if state.Branch != "" {
		payload["branch"] = state.Branch
	}
	c.JSON(http.StatusOK, payload)
}

// handleThreadStatus reports a thread's checkpoint status and any pending
// interrupt awaiting the user.
func (s *Server) handleThreadStatus(c *gin.Context) {
	threadID := c.Param("thread_id")
	status, interrupt, err := s.checkpoints.Status(c.Request.Context(), threadID)
	if err != nil {
		if errors.Is(err, orchestration.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown thread"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status lookup failed"})
		return
	}

	payload := gin.H{"thread_id": threadID, "status": status}
	if interrupt != nil {
		payload["interrupt"] = interrupt
	}
	c.JSON(http.StatusOK, payload)
}
