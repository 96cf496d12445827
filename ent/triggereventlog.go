// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentd-io/agentd/ent/trigger"
	"github.com/agentd-io/agentd/ent/triggereventlog"
)

// TriggerEventLog is the model entity for the TriggerEventLog schema.
type TriggerEventLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TriggerID holds the value of the "trigger_id" field.
	TriggerID string `json:"trigger_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Inbound event payload as received
	RawData map[string]interface{} `json:"raw_data,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ShouldExecuteAgent holds the value of the "should_execute_agent" field.
	ShouldExecuteAgent bool `json:"should_execute_agent,omitempty"`
	// ShouldExecuteWorkflow holds the value of the "should_execute_workflow" field.
	ShouldExecuteWorkflow bool `json:"should_execute_workflow,omitempty"`
	// AgentPrompt holds the value of the "agent_prompt" field.
	AgentPrompt *string `json:"agent_prompt,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID *string `json:"workflow_id,omitempty"`
	// Run created by the execution bridge, when execution happened
	RunID *string `json:"run_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerEventLogQuery when eager-loading is set.
	Edges        TriggerEventLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerEventLogEdges holds the relations/edges for other nodes in the graph.
type TriggerEventLogEdges struct {
	// Trigger holds the value of the trigger edge.
	Trigger *Trigger `json:"trigger,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TriggerOrErr returns the Trigger value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriggerEventLogEdges) TriggerOrErr() (*Trigger, error) {
	if e.Trigger != nil {
		return e.Trigger, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trigger.Label}
	}
	return nil, &NotLoadedError{edge: "trigger"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriggerEventLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triggereventlog.FieldRawData:
			values[i] = new([]byte)
		case triggereventlog.FieldSuccess, triggereventlog.FieldShouldExecuteAgent, triggereventlog.FieldShouldExecuteWorkflow:
			values[i] = new(sql.NullBool)
		case triggereventlog.FieldID, triggereventlog.FieldTriggerID, triggereventlog.FieldAgentID, triggereventlog.FieldAgentPrompt, triggereventlog.FieldWorkflowID, triggereventlog.FieldRunID, triggereventlog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case triggereventlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriggerEventLog fields.
func (_m *TriggerEventLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triggereventlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triggereventlog.FieldTriggerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_id", values[i])
			} else if value.Valid {
				_m.TriggerID = value.String
			}
		case triggereventlog.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case triggereventlog.FieldRawData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawData); err != nil {
					return fmt.Errorf("unmarshal field raw_data: %w", err)
				}
			}
		case triggereventlog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case triggereventlog.FieldShouldExecuteAgent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_execute_agent", values[i])
			} else if value.Valid {
				_m.ShouldExecuteAgent = value.Bool
			}
		case triggereventlog.FieldShouldExecuteWorkflow:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_execute_workflow", values[i])
			} else if value.Valid {
				_m.ShouldExecuteWorkflow = value.Bool
			}
		case triggereventlog.FieldAgentPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_prompt", values[i])
			} else if value.Valid {
				_m.AgentPrompt = new(string)
				*_m.AgentPrompt = value.String
			}
		case triggereventlog.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = new(string)
				*_m.WorkflowID = value.String
			}
		case triggereventlog.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case triggereventlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case triggereventlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TriggerEventLog.
// This includes values selected through modifiers, order, etc.
func (_m *TriggerEventLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrigger queries the "trigger" edge of the TriggerEventLog entity.
func (_m *TriggerEventLog) QueryTrigger() *TriggerQuery {
	return NewTriggerEventLogClient(_m.config).QueryTrigger(_m)
}

// Update returns a builder for updating this TriggerEventLog.
// Note that you need to call TriggerEventLog.Unwrap() before calling this method if this TriggerEventLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriggerEventLog) Update() *TriggerEventLogUpdateOne {
	return NewTriggerEventLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriggerEventLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriggerEventLog) Unwrap() *TriggerEventLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriggerEventLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriggerEventLog) String() string {
	var builder strings.Builder
	builder.WriteString("TriggerEventLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trigger_id=")
	builder.WriteString(_m.TriggerID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("raw_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawData))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("should_execute_agent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldExecuteAgent))
	builder.WriteString(", ")
	builder.WriteString("should_execute_workflow=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldExecuteWorkflow))
	builder.WriteString(", ")
	if v := _m.AgentPrompt; v != nil {
		builder.WriteString("agent_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkflowID; v != nil {
		builder.WriteString("workflow_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriggerEventLogs is a parsable slice of TriggerEventLog.
type TriggerEventLogs []*TriggerEventLog
