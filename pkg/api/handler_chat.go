package api

import (
	"io"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/jervis-ai/jervis-core/pkg/models"
)

// handleChat runs one chat exchange, streaming events as SSE. The stream
// stays open until a done or error event; client disconnect cancels the
// loop through the request context.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SessionID == "" || req.ActiveClientID == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id, active_client_id and message are required"})
		return
	}

	c.Writer.Header().Set("Content-Type", sse.ContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := make(chan models.StreamEvent, 16)
	go func() {
		defer close(events)
		s.chat.Handle(c.Request.Context(), req, func(e models.StreamEvent) {
			select {
			case events <- e:
			case <-c.Request.Context().Done():
			}
		})
	}()

	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(string(event.Type), event)
		return event.Type != models.StreamEventDone && event.Type != models.StreamEventError
	})

	// Drain remaining events after a terminal one so the handler goroutine
	// never blocks on a closed stream.
	go func() {
		for range events {
		}
	}()
}
