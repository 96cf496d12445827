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
)

// Trigger is the model entity for the Trigger schema.
type Trigger struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Dispatch key for the provider registry (schedule, webhook)
	ProviderID string `json:"provider_id,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType trigger.TriggerType `json:"trigger_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Failed deliveries since the last success — bounded by the provider
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// Provider-specific config — validated by the provider
	Config map[string]interface{} `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerQuery when eager-loading is set.
	Edges        TriggerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerEdges holds the relations/edges for other nodes in the graph.
type TriggerEdges struct {
	// EventLogs holds the value of the event_logs edge.
	EventLogs []*TriggerEventLog `json:"event_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventLogsOrErr returns the EventLogs value or an error if the edge
// was not loaded in eager-loading.
func (e TriggerEdges) EventLogsOrErr() ([]*TriggerEventLog, error) {
	if e.loadedTypes[0] {
		return e.EventLogs, nil
	}
	return nil, &NotLoadedError{edge: "event_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trigger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trigger.FieldConfig:
			values[i] = new([]byte)
		case trigger.FieldIsActive:
			values[i] = new(sql.NullBool)
		case trigger.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case trigger.FieldID, trigger.FieldAgentID, trigger.FieldProviderID, trigger.FieldTriggerType, trigger.FieldName, trigger.FieldDescription:
			values[i] = new(sql.NullString)
		case trigger.FieldCreatedAt, trigger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trigger fields.
func (_m *Trigger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trigger.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trigger.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case trigger.FieldProviderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value.Valid {
				_m.ProviderID = value.String
			}
		case trigger.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = trigger.TriggerType(value.String)
			}
		case trigger.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case trigger.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case trigger.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case trigger.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case trigger.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case trigger.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trigger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trigger.
// This includes values selected through modifiers, order, etc.
func (_m *Trigger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEventLogs queries the "event_logs" edge of the Trigger entity.
func (_m *Trigger) QueryEventLogs() *TriggerEventLogQuery {
	return NewTriggerClient(_m.config).QueryEventLogs(_m)
}

// Update returns a builder for updating this Trigger.
// Note that you need to call Trigger.Unwrap() before calling this method if this Trigger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trigger) Update() *TriggerUpdateOne {
	return NewTriggerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trigger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trigger) Unwrap() *Trigger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trigger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trigger) String() string {
	var builder strings.Builder
	builder.WriteString("Trigger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(_m.ProviderID)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Triggers is a parsable slice of Trigger.
type Triggers []*Trigger
