package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Thread conversation history — both LLM-facing messages and status records.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("type").
			Comment("user, assistant, tool, status, assistant_response_end"),
		field.JSON("content", map[string]interface{}{}).
			Comment("Message payload — shape depends on type"),
		field.Bool("is_llm_message").
			Default(true).
			Comment("False for status records that never enter the LLM context"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("agent_version_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
		index.Fields("thread_id", "type"),
	}
}
