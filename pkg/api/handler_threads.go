package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/pkg/models"
)

// CreateThread handles POST /api/v1/threads.
func (s *Server) CreateThread(c *gin.Context) {
	var req models.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := s.threads.CreateThread(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

// GetThread handles GET /api/v1/threads/:thread_id.
func (s *Server) GetThread(c *gin.Context) {
	thread, err := s.threads.GetThread(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// GetThreadMessages handles GET /api/v1/threads/:thread_id/messages.
func (s *Server) GetThreadMessages(c *gin.Context) {
	messages, err := s.threads.GetMessages(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
