package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/pkg/models"
)

// CreateWorkflow handles POST /api/v1/agents/:agent_id/workflows.
func (s *Server) CreateWorkflow(c *gin.Context) {
	var req models.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.AgentID = c.Param("agent_id")

	wf, err := s.workflows.CreateWorkflow(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wf)
}

// ListWorkflows handles GET /api/v1/agents/:agent_id/workflows.
func (s *Server) ListWorkflows(c *gin.Context) {
	workflows, err := s.workflows.ListWorkflowsByAgent(c.Request.Context(), c.Param("agent_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

// GetWorkflow handles GET /api/v1/workflows/:workflow_id.
func (s *Server) GetWorkflow(c *gin.Context) {
	wf, err := s.workflows.GetWorkflow(c.Request.Context(), c.Param("workflow_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

// UpdateWorkflow handles PATCH /api/v1/workflows/:workflow_id.
func (s *Server) UpdateWorkflow(c *gin.Context) {
	var req models.UpdateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wf, err := s.workflows.UpdateWorkflow(c.Request.Context(), c.Param("workflow_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

// DeleteWorkflow handles DELETE /api/v1/workflows/:workflow_id.
func (s *Server) DeleteWorkflow(c *gin.Context) {
	if err := s.workflows.DeleteWorkflow(c.Request.Context(), c.Param("workflow_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
