package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UISnapshot holds the schema definition for the UISnapshot entity.
// One committed, immutable version of the generated UI document for a turn.
// Rows are append-only: after creation only is_active may flip to false
// (when a fork supersedes the snapshot); nothing is ever physically deleted.
type UISnapshot struct {
	ent.Schema
}

// Fields of the UISnapshot.
func (UISnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("User turn this snapshot answers"),
		field.String("branch_name").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Previous snapshot on the same lineage (nil for branch root)"),
		field.Text("content").
			Comment("Serialized UI document as flushed in ui_complete"),
		field.Enum("layout_intent").
			Values("full", "extended", "preview", "hidden").
			Default("preview"),
		field.Int("snapshot_index").
			Immutable().
			Comment("Zero-based, contiguous per branch"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Merge action applied, summary text, tool calls used"),
		field.Bool("is_active").
			Default(true).
			Comment("False once a fork supersedes this snapshot"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UISnapshot.
func (UISnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ConversationSession.Type).
			Ref("snapshots").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("message", ChatMessage.Type).
			Ref("snapshots").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UISnapshot.
func (UISnapshot) Indexes() []ent.Index {
	return []ent.Index{
		// Compare-and-append guard: two concurrent turns racing to the same
		// index on one branch collide here and the loser retries.
		index.Fields("session_id", "branch_name", "snapshot_index").
			Unique(),
		// Branch family lookups by message.
		index.Fields("message_id"),
		// Default history listings exclude tombstoned snapshots.
		index.Fields("session_id", "branch_name").
			Annotations(entsql.IndexWhere("is_active")),
		index.Fields("created_at"),
	}
}
