package events

// ResponseItemPayload is the payload for response.new events: one response
// item appended to a run's buffer. Item is the stored map form of the
// ResponseItem (see models.ResponseItem.ToMap).
type ResponseItemPayload struct {
	Type      string         `json:"type"` // always EventTypeResponseNew
	RunID     string         `json:"run_id"`
	ThreadID  string         `json:"thread_id"`
	Item      map[string]any `json:"item"`
	Timestamp string         `json:"timestamp"` // RFC3339Nano
}

// RunStatusPayload is the payload for run.status events.
type RunStatusPayload struct {
	Type         string `json:"type"` // always EventTypeRunStatus
	RunID        string `json:"run_id"`
	ThreadID     string `json:"thread_id"`
	Status       string `json:"status"` // pending, running, completed, failed, stopped, agent_terminated
	ErrorMessage string `json:"error_message,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// ControlPayload is the payload for run.control transient events.
type ControlPayload struct {
	Type      string `json:"type"` // always EventTypeRunControl
	RunID     string `json:"run_id"`
	Signal    string `json:"signal"` // STOP, END_STREAM, ERROR
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
