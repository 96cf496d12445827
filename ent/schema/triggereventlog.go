package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerEventLog holds the schema definition for the TriggerEventLog entity.
// One row per processed trigger event: the raw data, the decision taken, and
// the outcome.
type TriggerEventLog struct {
	ent.Schema
}

// Fields of the TriggerEventLog.
func (TriggerEventLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("trigger_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.JSON("raw_data", map[string]interface{}{}).
			Optional().
			Comment("Inbound event payload as received"),
		field.Bool("success").
			Default(false),
		field.Bool("should_execute_agent").
			Default(false),
		field.Bool("should_execute_workflow").
			Default(false),
		field.Text("agent_prompt").
			Optional().
			Nillable(),
		field.String("workflow_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Run created by the execution bridge, when execution happened"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TriggerEventLog.
func (TriggerEventLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("trigger", Trigger.Type).
			Ref("event_logs").
			Field("trigger_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TriggerEventLog.
func (TriggerEventLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_id", "created_at"),
	}
}
