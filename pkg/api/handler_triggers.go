package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/pkg/models"
)

// CreateTrigger handles POST /api/v1/agents/:agent_id/triggers.
func (s *Server) CreateTrigger(c *gin.Context) {
	var req models.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.AgentID = c.Param("agent_id")

	trig, err := s.triggers.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trig)
}

// ListTriggers handles GET /api/v1/agents/:agent_id/triggers.
func (s *Server) ListTriggers(c *gin.Context) {
	triggers, err := s.triggers.ListByAgent(c.Request.Context(), c.Param("agent_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"triggers": triggers})
}

// GetTrigger handles GET /api/v1/triggers/:trigger_id.
func (s *Server) GetTrigger(c *gin.Context) {
	trig, err := s.triggers.Get(c.Request.Context(), c.Param("trigger_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trig)
}

// UpdateTrigger handles PATCH /api/v1/triggers/:trigger_id.
func (s *Server) UpdateTrigger(c *gin.Context) {
	var req models.UpdateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trig, err := s.triggers.Update(c.Request.Context(), c.Param("trigger_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trig)
}

// DeleteTrigger handles DELETE /api/v1/triggers/:trigger_id.
func (s *Server) DeleteTrigger(c *gin.Context) {
	if err := s.triggers.Delete(c.Request.Context(), c.Param("trigger_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTriggerLogs handles GET /api/v1/triggers/:trigger_id/logs.
func (s *Server) ListTriggerLogs(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := s.triggers.ListEventLogs(c.Request.Context(), c.Param("trigger_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// TriggerWebhook handles POST /api/v1/triggers/:trigger_id/webhook: the
// ingress for webhook deliveries and scheduler firings. The payload is
// routed through the trigger's provider and, when the decision says so,
// an execution is scaffolded and enqueued.
func (s *Server) TriggerWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	triggerID := c.Param("trigger_id")

	// An empty or non-JSON body is a valid delivery.
	var rawData map[string]any
	_ = c.ShouldBindJSON(&rawData)
	if rawData == nil {
		rawData = map[string]any{}
	}

	trig, evt, result, err := s.triggers.ProcessEvent(ctx, triggerID, rawData)
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Success {
		s.triggers.LogEvent(ctx, evt, *result, "")
		c.JSON(http.StatusBadRequest, gin.H{"error": result.ErrorMessage})
		return
	}

	exec, err := s.bridge.Execute(ctx, trig, result)
	if err != nil {
		failed := *result
		failed.Success = false
		failed.ErrorMessage = err.Error()
		s.triggers.LogEvent(ctx, evt, failed, "")
		respondError(c, err)
		return
	}
	s.triggers.LogEvent(ctx, evt, *result, exec.RunID)

	response := gin.H{
		"status":       "accepted",
		"execution_id": exec.RunID,
		"thread_id":    exec.ThreadID,
	}
	if exec.WorkflowID != "" {
		response["workflow_id"] = exec.WorkflowID
	} else {
		response["agent_id"] = exec.AgentID
	}
	c.JSON(http.StatusOK, response)
}
