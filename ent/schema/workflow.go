package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// A stored step tree that scheduled triggers reference by id. The execution
// bridge renders it into a prompt augmentation at run time.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("draft", "active", "archived").
			Default("draft"),
		field.JSON("steps", []map[string]interface{}{}).
			Comment("Ordered step tree: instructions and condition nodes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("status"),
	}
}
