package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/models"
)

// CreateRun handles POST /api/v1/threads/:thread_id/runs. The run is
// enqueued pending; a worker on some instance claims and executes it.
func (s *Server) CreateRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ThreadID = c.Param("thread_id")
	if req.Model == "" {
		req.Model = s.cfg.LLM.DefaultModel
	}

	run, err := s.runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// GetRun handles GET /api/v1/runs/:run_id.
func (s *Server) GetRun(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// ListThreadRuns handles GET /api/v1/threads/:thread_id/runs.
func (s *Server) ListThreadRuns(c *gin.Context) {
	runs, err := s.runs.ListRunsByThread(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RunsResponse{Runs: runs, Total: len(runs)})
}

// StopRun handles POST /api/v1/runs/:run_id/stop.
//
// Pending runs are stopped directly in the store. Running runs get a STOP
// signal on the control channel so the owning instance — which may not be
// this one — cancels the execution; the local cancel is just a fast path.
func (s *Server) StopRun(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("run_id")

	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		respondError(c, err)
		return
	}

	switch run.Status {
	case agentrun.StatusPending:
		if _, err := s.runs.MarkStopped(ctx, runID); err != nil {
			respondError(c, err)
			return
		}
		if err := s.publisher.PublishRunStatus(ctx, runID, events.RunStatusPayload{
			Type:      events.EventTypeRunStatus,
			RunID:     runID,
			ThreadID:  run.ThreadID,
			Status:    string(agentrun.StatusStopped),
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		}); err != nil {
			s.logger.Warn("Failed to publish stop status", "run_id", runID, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"status": "stopped"})

	case agentrun.StatusRunning:
		if err := s.publisher.PublishControl(ctx, runID, events.ControlPayload{
			Type:      events.EventTypeRunControl,
			RunID:     runID,
			Signal:    models.ControlStop,
			Reason:    "user requested stop",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		}); err != nil {
			respondError(c, err)
			return
		}
		s.pool.CancelRun(runID)
		c.JSON(http.StatusOK, gin.H{"status": "stopping"})

	default:
		c.JSON(http.StatusConflict, gin.H{"error": "run is not in a stoppable state"})
	}
}
