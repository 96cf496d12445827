package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/models"
)

// StreamRun handles GET /api/v1/runs/:run_id/stream: an SSE stream of the
// run's response items. The buffer is replayed first, then live events
// follow until a terminal item arrives. Reconnecting viewers resume with
// ?last_event_id=N.
func (s *Server) StreamRun(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("run_id")

	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache, no-transform")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	channel := events.RunChannel(runID)

	// Subscribe before replay so no event falls between the two; live
	// duplicates are dropped by buffer id.
	sub, err := s.manager.SubscribeLocal(ctx, channel)
	if err != nil {
		s.logger.Error("Failed to subscribe stream viewer", "run_id", runID, "error", err)
		return
	}
	defer sub.Close()

	w := &streamWriter{c: c}
	if sinceParam := c.Query("last_event_id"); sinceParam != "" {
		if since, err := strconv.Atoi(sinceParam); err == nil {
			w.lastID = since
		}
	}

	if done := s.replayBuffer(c, w, channel); done {
		return
	}

	// A run that already finished may predate buffer cleanup; nothing more
	// will arrive. The replay carried no terminal item, so close with a
	// synthetic status event to let the viewer detach cleanly.
	if runFinished(run.Status) {
		payload := map[string]any{
			"type":      events.EventTypeRunStatus,
			"run_id":    run.ID,
			"thread_id": run.ThreadID,
			"status":    string(run.Status),
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}
		if run.ErrorMessage != nil && *run.ErrorMessage != "" {
			payload["error_message"] = *run.ErrorMessage
		}
		w.write(payload)
		return
	}

	keepAlive := time.NewTicker(s.cfg.Server.StreamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-sub.C:
			if !ok {
				return
			}
			var payload map[string]any
			if err := json.Unmarshal(msg, &payload); err != nil {
				s.logger.Warn("Dropping malformed stream event", "run_id", runID, "error", err)
				continue
			}
			if truncated, _ := payload["truncated"].(bool); truncated {
				// Oversized NOTIFY payload: the full event is in the buffer.
				if done := s.replayBuffer(c, w, channel); done {
					return
				}
				continue
			}
			if done := w.write(payload); done {
				return
			}

		case <-keepAlive.C:
			w.comment()
		}
	}
}

// replayBuffer writes all buffered events past the writer's position.
// Returns true when a terminal item was written.
func (s *Server) replayBuffer(c *gin.Context, w *streamWriter, channel string) bool {
	rows, err := s.events.GetEventsSince(c.Request.Context(), channel, w.lastID, 0)
	if err != nil {
		s.logger.Error("Failed to replay stream buffer", "channel", channel, "error", err)
		return false
	}
	for _, row := range rows {
		payload := row.Payload
		if payload == nil {
			continue
		}
		payload["db_event_id"] = row.ID
		if done := w.write(payload); done {
			return true
		}
	}
	return false
}

// streamWriter writes SSE frames and tracks the viewer's buffer position.
type streamWriter struct {
	c      *gin.Context
	lastID int
}

// write emits one event payload as an SSE data frame. Events at or before
// the current position are dropped. Returns true for terminal items.
func (w *streamWriter) write(payload map[string]any) bool {
	if id := eventID(payload); id != 0 {
		if id <= w.lastID {
			return false
		}
		w.lastID = id
	}

	typ, _ := payload["type"].(string)
	switch typ {
	case events.EventTypeResponseNew:
		itemMap, ok := payload["item"].(map[string]any)
		if !ok {
			return false
		}
		item := models.ItemFromMap(itemMap)
		data, err := item.MarshalForStream()
		if err != nil {
			return false
		}
		w.frame(data)
		return item.IsTerminal()

	case events.EventTypeRunStatus:
		data, err := json.Marshal(payload)
		if err != nil {
			return false
		}
		w.frame(data)
		status, _ := payload["status"].(string)
		return runFinished(agentrun.Status(status))

	default:
		return false
	}
}

func (w *streamWriter) frame(data []byte) {
	w.c.Writer.WriteString("data: ")
	w.c.Writer.Write(data)
	w.c.Writer.WriteString("\n\n")
	w.c.Writer.Flush()
}

// comment writes an SSE comment line to keep idle connections open.
func (w *streamWriter) comment() {
	w.c.Writer.WriteString(": keep-alive\n\n")
	w.c.Writer.Flush()
}

func eventID(payload map[string]any) int {
	switch v := payload["db_event_id"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func runFinished(status agentrun.Status) bool {
	switch status {
	case agentrun.StatusCompleted, agentrun.StatusFailed, agentrun.StatusStopped, agentrun.StatusAgentTerminated:
		return true
	default:
		return false
	}
}
