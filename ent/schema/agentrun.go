package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per top-to-bottom agent execution attached to a thread.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("project_id").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Agent whose config drives this run"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "stopped", "agent_terminated").
			Default("pending"),
		field.String("model").
			Comment("LLM model name requested for this run"),
		field.JSON("processor_config", map[string]interface{}{}).
			Optional().
			Comment("Response processor options (tool formats, strategy, caps)"),
		field.Text("system_prompt_suffix").
			Optional().
			Nillable().
			Comment("Trigger/workflow prompt augmentation, appended for this run only"),
		field.JSON("agent_config", map[string]interface{}{}).
			Optional().
			Comment("Pre-resolved agent blob (tools, instructions) if supplied"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the run was enqueued"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run (pending → running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("responses", []map[string]interface{}{}).
			Optional().
			Comment("Snapshot of all response items, written at finalisation"),
		field.String("instance_id").
			Optional().
			Nillable().
			Comment("Worker instance that owns the run — multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("runs").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("thread_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
