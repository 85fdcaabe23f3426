package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationSession holds the schema definition for the ConversationSession entity.
// One session per conversation; owns its branches, messages and snapshots.
type ConversationSession struct {
	ent.Schema
}

// Fields of the ConversationSession.
func (ConversationSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Generated after the first completed turn"),
		field.String("active_branch").
			Default("main").
			Comment("Branch the server-side write cursor currently appends to"),
		field.String("author").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_turn_at").
			Optional().
			Nillable().
			Comment("When the most recent turn completed"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination and orphan recovery"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the ConversationSession.
func (ConversationSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("branches", Branch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snapshots", UISnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ConversationSession.
func (ConversationSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("last_turn_at"),
		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
