// Package events provides the response buffer fan-out: items are persisted
// to the events table (the buffer) and broadcast via PostgreSQL
// NOTIFY/LISTEN so that every instance can serve viewers of any run.
//
// Two delivery patterns:
//
//   - PERSISTED (response items): the payload is appended to the events
//     table and a NOTIFY fires in the same transaction. Viewers replay the
//     table and use notifications only as a wake-up; truth is the buffer.
//
//   - TRANSIENT (control signals, global run status): NOTIFY only. Lost on
//     disconnect, which is fine — control is a trigger, and run status is
//     re-readable from the runs table.
package events

// Event types carried in the payload "type" field.
const (
	// EventTypeResponseNew is a persisted response item appended to a run's
	// buffer.
	EventTypeResponseNew = "response.new"

	// EventTypeRunStatus is a run lifecycle transition. Persisted to the run
	// channel and mirrored transiently on the global runs channel.
	EventTypeRunStatus = "run.status"

	// EventTypeRunControl is a transient control signal: STOP, END_STREAM,
	// or ERROR.
	EventTypeRunControl = "run.control"
)

// GlobalRunsChannel carries transient run status events for dashboards and
// queue monitoring.
const GlobalRunsChannel = "runs"

// RunChannel returns the new_response channel of a run.
// Format: "agent_run:{run_id}"
func RunChannel(runID string) string {
	return "agent_run:" + runID
}

// RunControlChannel returns the control channel of a run.
// Format: "agent_run:{run_id}:control"
func RunControlChannel(runID string) string {
	return RunChannel(runID) + ":control"
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "agent_run:abc-123"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
