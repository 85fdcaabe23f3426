package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Branch holds the schema definition for the Branch entity.
// A named, ordered lineage of UI snapshots. "main" is created empty with
// the session; forks allocate timestamp-derived names for uniqueness.
type Branch struct {
	ent.Schema
}

// Fields of the Branch.
func (Branch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("branch_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("name").
			Immutable(),
		field.String("parent_branch").
			Optional().
			Nillable().
			Immutable().
			Comment("Branch this one forked from (nil for main)"),
		field.Int("forked_from_index").
			Optional().
			Nillable().
			Immutable().
			Comment("Snapshot index on the parent branch at the fork point"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Branch.
func (Branch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ConversationSession.Type).
			Ref("branches").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Branch.
func (Branch) Indexes() []ent.Index {
	return []ent.Index{
		// Branch names are unique within a session.
		index.Fields("session_id", "name").
			Unique(),
		index.Fields("session_id", "created_at"),
	}
}
