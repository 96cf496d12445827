package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trigger holds the schema definition for the Trigger entity.
// A declarative binding of an external event (cron, webhook) to either an
// agent prompt or a workflow execution.
type Trigger struct {
	ent.Schema
}

// Fields of the Trigger.
func (Trigger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("provider_id").
			Comment("Dispatch key for the provider registry (schedule, webhook)"),
		field.Enum("trigger_type").
			Values("schedule", "webhook", "event"),
		field.String("name"),
		field.String("description").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
		field.Int("consecutive_failures").
			Default(0).
			Comment("Failed deliveries since the last success — bounded by the provider"),
		field.JSON("config", map[string]interface{}{}).
			Comment("Provider-specific config — validated by the provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Trigger.
func (Trigger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("event_logs", TriggerEventLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Trigger.
func (Trigger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("trigger_type"),
		index.Fields("is_active"),
	}
}
