package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity.
// Created by the execution bridge for trigger-initiated runs; records the
// sandbox the run operates in.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("account_id").
			Optional().
			Nillable(),
		field.JSON("sandbox", map[string]interface{}{}).
			Optional().
			Comment("Sandbox id, password and preview URLs from the provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
