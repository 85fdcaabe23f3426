package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// One row per user turn. Edited messages are new rows referencing the
// original via edited_from_id — the original is never mutated, so every
// branch keeps a stable message to anchor its snapshots to.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Text("content"),
		field.String("author").
			Optional().
			Nillable(),
		field.String("edited_from_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Original message this one is an edit of"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ConversationSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("snapshots", UISnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("edited_from_id"),
	}
}
