// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/ent/thread"
)

// AgentRun is the model entity for the AgentRun schema.
type AgentRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// Agent whose config drives this run
	AgentID *string `json:"agent_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrun.Status `json:"status,omitempty"`
	// LLM model name requested for this run
	Model string `json:"model,omitempty"`
	// Response processor options (tool formats, strategy, caps)
	ProcessorConfig map[string]interface{} `json:"processor_config,omitempty"`
	// Trigger/workflow prompt augmentation, appended for this run only
	SystemPromptSuffix *string `json:"system_prompt_suffix,omitempty"`
	// Pre-resolved agent blob (tools, instructions) if supplied
	AgentConfig map[string]interface{} `json:"agent_config,omitempty"`
	// When the run was enqueued
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the run (pending → running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Snapshot of all response items, written at finalisation
	Responses []map[string]interface{} `json:"responses,omitempty"`
	// Worker instance that owns the run — multi-replica coordination
	InstanceID *string `json:"instance_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRunQuery when eager-loading is set.
	Edges        AgentRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRunEdges holds the relations/edges for other nodes in the graph.
type AgentRunEdges struct {
	// Thread holds the value of the thread edge.
	Thread *Thread `json:"thread,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRunEdges) ThreadOrErr() (*Thread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: thread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldProcessorConfig, agentrun.FieldAgentConfig, agentrun.FieldResponses:
			values[i] = new([]byte)
		case agentrun.FieldID, agentrun.FieldThreadID, agentrun.FieldProjectID, agentrun.FieldAgentID, agentrun.FieldStatus, agentrun.FieldModel, agentrun.FieldSystemPromptSuffix, agentrun.FieldErrorMessage, agentrun.FieldInstanceID:
			values[i] = new(sql.NullString)
		case agentrun.FieldCreatedAt, agentrun.FieldStartedAt, agentrun.FieldCompletedAt, agentrun.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRun fields.
func (_m *AgentRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrun.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case agentrun.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case agentrun.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case agentrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrun.Status(value.String)
			}
		case agentrun.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case agentrun.FieldProcessorConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processor_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessorConfig); err != nil {
					return fmt.Errorf("unmarshal field processor_config: %w", err)
				}
			}
		case agentrun.FieldSystemPromptSuffix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt_suffix", values[i])
			} else if value.Valid {
				_m.SystemPromptSuffix = new(string)
				*_m.SystemPromptSuffix = value.String
			}
		case agentrun.FieldAgentConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentConfig); err != nil {
					return fmt.Errorf("unmarshal field agent_config: %w", err)
				}
			}
		case agentrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case agentrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case agentrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agentrun.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case agentrun.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = new(string)
				*_m.InstanceID = value.String
			}
		case agentrun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRun.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the AgentRun entity.
func (_m *AgentRun) QueryThread() *ThreadQuery {
	return NewAgentRunClient(_m.config).QueryThread(_m)
}

// QueryEvents queries the "events" edge of the AgentRun entity.
func (_m *AgentRun) QueryEvents() *EventQuery {
	return NewAgentRunClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this AgentRun.
// Note that you need to call AgentRun.Unwrap() before calling this method if this AgentRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRun) Update() *AgentRunUpdateOne {
	return NewAgentRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRun) Unwrap() *AgentRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRun) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("processor_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessorConfig))
	builder.WriteString(", ")
	if v := _m.SystemPromptSuffix; v != nil {
		builder.WriteString("system_prompt_suffix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agent_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentConfig))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	if v := _m.InstanceID; v != nil {
		builder.WriteString("instance_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentRuns is a parsable slice of AgentRun.
type AgentRuns []*AgentRun
